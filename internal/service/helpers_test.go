package service

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/PizzaHomicide/reel/internal/repository/library"
)

// scriptedPrompter answers prompts from a fixed list, then reports EOF
type scriptedPrompter struct {
	answers []string
	asked   int
}

func (p *scriptedPrompter) Prompt() (string, error) {
	p.asked++
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

type failingPrompter struct{}

func (failingPrompter) Prompt() (string, error) {
	return "", errors.New("stdin closed")
}

func newTestCatalog(t *testing.T) *library.Catalog {
	t.Helper()
	catalog, err := library.NewCatalog([]*domain.Video{
		domain.NewVideo("funny_dogs_video_id", "Funny Dogs", []string{"#dog", "#animal"}),
		domain.NewVideo("amazing_cats_video_id", "Amazing Cats", []string{"#cat", "#animal"}),
		domain.NewVideo("another_cat_video_id", "Another Cat Video", []string{"#cat", "#animal"}),
		domain.NewVideo("life_at_google_video_id", "Life at Google", []string{"#google", "#career"}),
		domain.NewVideo("nothing_video_id", "Video about nothing", nil),
	})
	if err != nil {
		t.Fatalf("Failed to build catalog: %v", err)
	}
	return catalog
}

func newTestSession(t *testing.T, answers ...string) (*Session, *bytes.Buffer, *scriptedPrompter) {
	t.Helper()
	out := &bytes.Buffer{}
	prompter := &scriptedPrompter{answers: answers}
	return NewSession(newTestCatalog(t), out, prompter), out, prompter
}

// lines returns the buffered output split into lines and resets the buffer
func lines(out *bytes.Buffer) []string {
	text := strings.TrimRight(out.String(), "\n")
	out.Reset()
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// activeVideos returns every catalog video with a playback flag set
func activeVideos(catalog domain.VideoCatalog) []*domain.Video {
	var active []*domain.Video
	for _, v := range catalog.GetAllVideos() {
		if v.Playing || v.Paused {
			active = append(active, v)
		}
	}
	return active
}
