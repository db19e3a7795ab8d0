package domain

import "strings"

// Playlist is a named, ordered collection of catalog videos with no duplicates
type Playlist struct {
	Name    string // Display name, as originally supplied
	videos  []*Video
	members map[string]struct{}
}

// NewPlaylist creates an empty playlist
func NewPlaylist(name string) *Playlist {
	return &Playlist{
		Name:    name,
		members: make(map[string]struct{}),
	}
}

// PlaylistKey normalises a playlist name for case-insensitive lookup
func PlaylistKey(name string) string {
	return strings.ToLower(name)
}

// Videos returns the playlist contents in insertion order
func (p *Playlist) Videos() []*Video {
	return append([]*Video(nil), p.videos...)
}

// Len returns the number of videos in the playlist
func (p *Playlist) Len() int {
	return len(p.videos)
}

// Contains reports whether the video is already in the playlist
func (p *Playlist) Contains(v *Video) bool {
	_, ok := p.members[v.ID]
	return ok
}

// Append adds the video to the end of the playlist.  Returns false if it was already present.
func (p *Playlist) Append(v *Video) bool {
	if p.Contains(v) {
		return false
	}
	p.videos = append(p.videos, v)
	p.members[v.ID] = struct{}{}
	return true
}

// Remove removes the video from the playlist.  Returns false if it was not present.
func (p *Playlist) Remove(v *Video) bool {
	if !p.Contains(v) {
		return false
	}
	for i, existing := range p.videos {
		if existing.ID == v.ID {
			p.videos = append(p.videos[:i], p.videos[i+1:]...)
			break
		}
	}
	delete(p.members, v.ID)
	return true
}

// Clear removes every video from the playlist
func (p *Playlist) Clear() {
	p.videos = nil
	p.members = make(map[string]struct{})
}
