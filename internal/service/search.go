package service

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/PizzaHomicide/reel/internal/log"
)

// Prompter supplies one line of user input, blocking until it is available.  An error (including io.EOF) means no
// answer was given.
type Prompter interface {
	Prompt() (string, error)
}

// Selection is the outcome of interpreting a user's answer to a search result prompt
type Selection int

const (
	SelectionPlayed Selection = iota
	SelectionNotANumber
	SelectionOutOfRange
	SelectionNoInput
	SelectionNoResults
)

func (s Selection) String() string {
	switch s {
	case SelectionPlayed:
		return "played"
	case SelectionNotANumber:
		return "not_a_number"
	case SelectionOutOfRange:
		return "out_of_range"
	case SelectionNoInput:
		return "no_input"
	case SelectionNoResults:
		return "no_results"
	default:
		return "unknown"
	}
}

// SearchService filters the catalog and lets the user pick one of the results to play
type SearchService struct {
	catalog  domain.VideoCatalog
	playback *PlaybackService
	prompter Prompter
	out      io.Writer
}

func NewSearchService(catalog domain.VideoCatalog, playback *PlaybackService, prompter Prompter, out io.Writer) *SearchService {
	return &SearchService{
		catalog:  catalog,
		playback: playback,
		prompter: prompter,
		out:      out,
	}
}

// ByTitle returns the unflagged videos whose title contains term, ignoring case, sorted by title
func (s *SearchService) ByTitle(term string) []*domain.Video {
	needle := strings.ToLower(term)
	return s.filter(func(v *domain.Video) bool {
		return strings.Contains(strings.ToLower(v.Title), needle)
	})
}

// ByTag returns the unflagged videos with a tag equal to tag, ignoring case, sorted by title
func (s *SearchService) ByTag(tag string) []*domain.Video {
	return s.filter(func(v *domain.Video) bool {
		return v.HasTag(tag)
	})
}

// filter applies match to the catalog.  Results are unique by title and sorted by title.
func (s *SearchService) filter(match func(*domain.Video) bool) []*domain.Video {
	byTitle := make(map[string]*domain.Video)
	for _, v := range s.catalog.GetAllVideos() {
		if v.Flagged || !match(v) {
			continue
		}
		if _, seen := byTitle[v.Title]; !seen {
			byTitle[v.Title] = v
		}
	}

	results := make([]*domain.Video, 0, len(byTitle))
	for _, v := range byTitle {
		results = append(results, v)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Title < results[j].Title
	})
	return results
}

// SearchTitle runs an interactive title search
func (s *SearchService) SearchTitle(term string) Selection {
	return s.interactive(term, s.ByTitle(term))
}

// SearchTag runs an interactive tag search
func (s *SearchService) SearchTag(tag string) Selection {
	return s.interactive(tag, s.ByTag(tag))
}

// Present prints the numbered result list and the selection question.  It returns false if there was nothing to
// present.
func (s *SearchService) Present(term string, results []*domain.Video) bool {
	if len(results) == 0 {
		say(s.out, "No search results for %s", term)
		return false
	}

	say(s.out, "Here are the results for %s:", term)
	for i, v := range results {
		say(s.out, "  %d) %s", i+1, v)
	}
	say(s.out, "Would you like to play any of the above? If yes, specify the number of the video.")
	say(s.out, "If your answer is not a valid number, we will assume it's a no.")
	return true
}

// Choose plays the result picked by input, if it names one.  Invalid answers are silently ignored.
func (s *SearchService) Choose(results []*domain.Video, input string) Selection {
	video, outcome := SelectResult(results, input)
	log.Debug("Search selection", "input", input, "outcome", outcome)
	if video != nil {
		s.playback.Play(video.ID)
	}
	return outcome
}

func (s *SearchService) interactive(term string, results []*domain.Video) Selection {
	log.Debug("Search", "term", term, "results", len(results))
	if !s.Present(term, results) {
		return SelectionNoResults
	}

	answer, err := s.prompter.Prompt()
	if err != nil {
		log.Debug("No answer to search prompt", "error", err)
		return SelectionNoInput
	}
	return s.Choose(results, answer)
}

// SelectResult maps a 1-based answer onto results
func SelectResult(results []*domain.Video, input string) (*domain.Video, Selection) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return nil, SelectionNotANumber
	}
	if n < 1 || n > len(results) {
		return nil, SelectionOutOfRange
	}
	return results[n-1], SelectionPlayed
}
