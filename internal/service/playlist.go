package service

import (
	"io"
	"sort"

	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/PizzaHomicide/reel/internal/log"
)

// PlaylistService owns the session's playlists, keyed by their lowercased name
type PlaylistService struct {
	catalog   domain.VideoCatalog
	out       io.Writer
	playlists map[string]*domain.Playlist
}

func NewPlaylistService(catalog domain.VideoCatalog, out io.Writer) *PlaylistService {
	return &PlaylistService{
		catalog:   catalog,
		out:       out,
		playlists: make(map[string]*domain.Playlist),
	}
}

// Get returns the playlist with the given name regardless of case, or nil
func (s *PlaylistService) Get(name string) *domain.Playlist {
	return s.playlists[domain.PlaylistKey(name)]
}

// Names returns the display names of all playlists ordered by their lowercased key
func (s *PlaylistService) Names() []string {
	keys := make([]string, 0, len(s.playlists))
	for key := range s.playlists {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, s.playlists[key].Name)
	}
	return names
}

func (s *PlaylistService) Create(name string) {
	key := domain.PlaylistKey(name)
	if _, exists := s.playlists[key]; exists {
		say(s.out, "Cannot create playlist: A playlist with the same name already exists")
		return
	}

	s.playlists[key] = domain.NewPlaylist(name)
	log.Info("Created playlist", "name", name)
	say(s.out, "Successfully created new playlist: %s", name)
}

func (s *PlaylistService) Add(name, videoID string) {
	playlist := s.Get(name)
	if playlist == nil {
		say(s.out, "Cannot add video to %s: Playlist does not exist", name)
		return
	}

	video := s.catalog.GetVideo(videoID)
	switch {
	case video == nil:
		say(s.out, "Cannot add video to %s: Video does not exist", name)
	case video.Flagged:
		say(s.out, "Cannot add video to %s: Video is currently flagged (reason: %s)", name, video.FlagReason)
	case !playlist.Append(video):
		say(s.out, "Cannot add video to %s: Video already added", name)
	default:
		log.Debug("Added video to playlist", "playlist", playlist.Name, "id", video.ID, "length", playlist.Len())
		say(s.out, "Added video to %s: %s", name, video.Title)
	}
}

func (s *PlaylistService) Remove(name, videoID string) {
	playlist := s.Get(name)
	if playlist == nil {
		say(s.out, "Cannot remove video from %s: Playlist does not exist", name)
		return
	}

	video := s.catalog.GetVideo(videoID)
	switch {
	case video == nil:
		say(s.out, "Cannot remove video from %s: Video does not exist", name)
	case !playlist.Remove(video):
		say(s.out, "Cannot remove video from %s: Video is not in playlist", name)
	default:
		log.Debug("Removed video from playlist", "playlist", playlist.Name, "id", video.ID, "length", playlist.Len())
		say(s.out, "Removed video from %s: %s", name, video.Title)
	}
}

func (s *PlaylistService) Clear(name string) {
	playlist := s.Get(name)
	if playlist == nil {
		say(s.out, "Cannot clear playlist %s: Playlist does not exist", name)
		return
	}

	playlist.Clear()
	log.Debug("Cleared playlist", "playlist", playlist.Name)
	say(s.out, "Successfully removed all videos from %s", name)
}

func (s *PlaylistService) Delete(name string) {
	key := domain.PlaylistKey(name)
	if _, exists := s.playlists[key]; !exists {
		say(s.out, "Cannot delete playlist %s: Playlist does not exist", name)
		return
	}

	delete(s.playlists, key)
	log.Info("Deleted playlist", "name", name)
	say(s.out, "Deleted playlist: %s", name)
}

func (s *PlaylistService) ListAll() {
	names := s.Names()
	if len(names) == 0 {
		say(s.out, "No playlists exist yet")
		return
	}

	say(s.out, "Showing all playlists:")
	for _, name := range names {
		say(s.out, "  %s", name)
	}
}

func (s *PlaylistService) Show(name string) {
	playlist := s.Get(name)
	if playlist == nil {
		say(s.out, "Cannot show playlist %s: Playlist does not exist", name)
		return
	}

	say(s.out, "Showing playlist: %s", name)
	videos := playlist.Videos()
	if len(videos) == 0 {
		say(s.out, "  No videos here yet")
		return
	}
	for _, v := range videos {
		say(s.out, "  %s%s", v, flagSuffix(v.Flagged, v.FlagReason))
	}
}
