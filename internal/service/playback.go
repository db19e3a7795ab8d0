package service

import (
	"io"
	"math/rand/v2"

	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/PizzaHomicide/reel/internal/log"
)

// PlaybackService owns the single "current video" slot of a session and its playing/paused/stopped state.
type PlaybackService struct {
	catalog domain.VideoCatalog
	out     io.Writer
	current *domain.Video
	rng     *rand.Rand
}

// PlaybackOption configures a PlaybackService
type PlaybackOption func(*PlaybackService)

// WithRand replaces the random source used by PlayRandom
func WithRand(rng *rand.Rand) PlaybackOption {
	return func(s *PlaybackService) {
		s.rng = rng
	}
}

func NewPlaybackService(catalog domain.VideoCatalog, out io.Writer, opts ...PlaybackOption) *PlaybackService {
	s := &PlaybackService{
		catalog: catalog,
		out:     out,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the current video, or nil when stopped
func (s *PlaybackService) Current() *domain.Video {
	return s.current
}

// Status derives the playback status from the current video
func (s *PlaybackService) Status() domain.PlaybackStatus {
	switch {
	case s.current == nil:
		return domain.StatusStopped
	case s.current.Paused:
		return domain.StatusPaused
	default:
		return domain.StatusPlaying
	}
}

// Play makes the video with the given ID current.  Whatever was current before is stopped first, even when it is
// the same video.
func (s *PlaybackService) Play(videoID string) {
	video := s.catalog.GetVideo(videoID)
	if video == nil {
		say(s.out, "Cannot play video: Video does not exist")
		return
	}
	if video.Flagged {
		say(s.out, "Cannot play video: Video is currently flagged (reason: %s)", video.FlagReason)
		return
	}

	if s.current != nil {
		say(s.out, "Stopping video: %s", s.current.Title)
		s.current.ClearPlayback()
	}
	s.start(video)
}

// Stop stops the current video, if any
func (s *PlaybackService) Stop() {
	if s.current == nil {
		say(s.out, "Cannot stop video: No video is currently playing")
		return
	}

	log.Debug("Stopping video", "id", s.current.ID)
	s.current.ClearPlayback()
	say(s.out, "Stopping video: %s", s.current.Title)
	s.current = nil
}

// PlayRandom stops the current video and plays one picked uniformly from the unflagged videos in the catalog
func (s *PlaybackService) PlayRandom() {
	if s.current != nil {
		s.Stop()
	}

	var candidates []*domain.Video
	for _, v := range s.catalog.GetAllVideos() {
		if !v.Flagged {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		say(s.out, "No videos available")
		return
	}

	s.start(candidates[s.intN(len(candidates))])
}

// Pause pauses the current video
func (s *PlaybackService) Pause() {
	switch {
	case s.current == nil:
		say(s.out, "Cannot pause video: No video is currently playing")
	case s.current.Paused:
		say(s.out, "Video already paused: %s", s.current.Title)
	default:
		s.current.Playing = false
		s.current.Paused = true
		log.Debug("Paused video", "id", s.current.ID)
		say(s.out, "Pausing video: %s", s.current.Title)
	}
}

// Resume continues a paused video
func (s *PlaybackService) Resume() {
	switch {
	case s.current == nil:
		say(s.out, "Cannot continue video: No video is currently playing")
	case !s.current.Paused:
		say(s.out, "Cannot continue video: Video is not paused")
	default:
		s.current.Paused = false
		s.current.Playing = true
		log.Debug("Resumed video", "id", s.current.ID)
		say(s.out, "Continuing video: %s", s.current.Title)
	}
}

// ShowCurrent describes the current video
func (s *PlaybackService) ShowCurrent() {
	if s.current == nil {
		say(s.out, "No video is currently playing")
		return
	}

	if s.current.Paused {
		say(s.out, "Currently playing: %s - PAUSED", s.current)
		return
	}
	say(s.out, "Currently playing: %s", s.current)
}

func (s *PlaybackService) start(video *domain.Video) {
	s.current = video
	video.Playing = true
	video.Paused = false
	log.Debug("Playing video", "id", video.ID, "title", video.Title)
	say(s.out, "Playing video: %s", video.Title)
}

func (s *PlaybackService) intN(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	return rand.IntN(n)
}
