package domain

import (
	"fmt"
	"strings"
)

// PlaybackStatus represents the state of the currently selected video
type PlaybackStatus string

const (
	StatusStopped PlaybackStatus = "STOPPED"
	StatusPlaying PlaybackStatus = "PLAYING"
	StatusPaused  PlaybackStatus = "PAUSED"
)

// DefaultFlagReason is used when a video is flagged without a reason
const DefaultFlagReason = "Not supplied"

// Video is a single catalog entry.  ID, Title and Tags are fixed at load time, the remaining fields are session
// scoped and only mutated by the services that own them.
type Video struct {
	ID    string
	Title string
	Tags  []string

	// Playback flags, owned by the playback service.  Never both true.
	Playing bool
	Paused  bool

	// Moderation state, owned by the moderation service
	Flagged    bool
	FlagReason string
}

// NewVideo creates a video with a defensive copy of the tags
func NewVideo(id, title string, tags []string) *Video {
	return &Video{
		ID:    id,
		Title: title,
		Tags:  append([]string(nil), tags...),
	}
}

// String renders the video the way every listing in the application shows it: `title (id) [tag1 tag2]`
func (v *Video) String() string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, strings.Join(v.Tags, " "))
}

// HasTag reports whether any of the video's tags equals tag, ignoring case
func (v *Video) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// ClearPlayback resets both playback flags
func (v *Video) ClearPlayback() {
	v.Playing = false
	v.Paused = false
}
