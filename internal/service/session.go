package service

import (
	"io"

	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/google/uuid"
)

// Session bundles every service a single run of the application works with.  One is created per run, nothing in
// it is shared with other sessions.
type Session struct {
	ID         string
	Catalog    domain.VideoCatalog
	Library    *LibraryService
	Playback   *PlaybackService
	Playlists  *PlaylistService
	Search     *SearchService
	Moderation *ModerationService
}

// NewSession wires up the services over catalog.  All status output goes to out, search prompts read from prompter.
func NewSession(catalog domain.VideoCatalog, out io.Writer, prompter Prompter, opts ...PlaybackOption) *Session {
	playback := NewPlaybackService(catalog, out, opts...)
	return &Session{
		ID:         uuid.NewString(),
		Catalog:    catalog,
		Library:    NewLibraryService(catalog, out),
		Playback:   playback,
		Playlists:  NewPlaylistService(catalog, out),
		Search:     NewSearchService(catalog, playback, prompter, out),
		Moderation: NewModerationService(catalog, playback, out),
	}
}
