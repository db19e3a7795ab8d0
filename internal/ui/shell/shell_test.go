package shell

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/PizzaHomicide/reel/internal/command"
	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/PizzaHomicide/reel/internal/repository/library"
	"github.com/PizzaHomicide/reel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShellSession(t *testing.T, input string) (*Shell, *service.Session, *bytes.Buffer) {
	t.Helper()
	catalog, err := library.NewCatalog([]*domain.Video{
		domain.NewVideo("amazing_cats_video_id", "Amazing Cats", []string{"#cat", "#animal"}),
		domain.NewVideo("dog_video_id", "Dog Video", []string{"#dog"}),
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	sh := New(strings.NewReader(input), out, "> ")
	session := service.NewSession(catalog, out, sh)
	return sh, session, out
}

func TestShellRunsUntilExit(t *testing.T) {
	sh, session, out := newShellSession(t, "PLAY dog_video_id\nEXIT\nPLAY amazing_cats_video_id\n")

	require.NoError(t, sh.Run(command.NewDispatcher(session, out)))

	assert.Contains(t, out.String(), welcomeMessage)
	assert.Contains(t, out.String(), "Playing video: Dog Video")
	assert.NotContains(t, out.String(), "Amazing Cats", "commands after EXIT must not run")
	assert.True(t, strings.HasSuffix(out.String(), goodbyeMessage+"\n"))
}

func TestShellStopsAtEndOfInput(t *testing.T) {
	sh, session, out := newShellSession(t, "PLAY dog_video_id")

	require.NoError(t, sh.Run(command.NewDispatcher(session, out)))
	assert.Contains(t, out.String(), "Playing video: Dog Video")
	assert.Contains(t, out.String(), goodbyeMessage)
}

func TestShellSearchReadsSelectionFromInput(t *testing.T) {
	sh, session, out := newShellSession(t, "SEARCH_VIDEOS cat\n1\nSHOW_PLAYING\nEXIT\n")

	require.NoError(t, sh.Run(command.NewDispatcher(session, out)))
	assert.Contains(t, out.String(), "  1) Amazing Cats (amazing_cats_video_id) [#cat #animal]")
	assert.Contains(t, out.String(), "Playing video: Amazing Cats")
	assert.Contains(t, out.String(), "Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #animal]")
}

func TestShellSearchIgnoresInvalidSelection(t *testing.T) {
	sh, session, out := newShellSession(t, "SEARCH_VIDEOS cat\nabc\nSEARCH_VIDEOS cat\n99\nEXIT\n")

	require.NoError(t, sh.Run(command.NewDispatcher(session, out)))
	assert.NotContains(t, out.String(), "Playing video")
	assert.NotContains(t, out.String(), command.InvalidCommandMessage, "the answer must not be treated as a command")
	assert.Nil(t, session.Playback.Current())
}

func TestPromptEOF(t *testing.T) {
	sh := New(strings.NewReader(""), io.Discard, "")
	_, err := sh.Prompt()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestPromptTrimsLineEndings(t *testing.T) {
	sh := New(strings.NewReader("2\r\nlast"), io.Discard, "")

	line, err := sh.Prompt()
	require.NoError(t, err)
	assert.Equal(t, "2", line)

	line, err = sh.Prompt()
	require.NoError(t, err)
	assert.Equal(t, "last", line)
}

type failingExecutor struct{}

func (failingExecutor) Execute(string) error { return errors.New("boom") }

func TestShellPropagatesExecutorErrors(t *testing.T) {
	sh := New(strings.NewReader("anything\n"), io.Discard, "")
	assert.EqualError(t, sh.Run(failingExecutor{}), "boom")
}
