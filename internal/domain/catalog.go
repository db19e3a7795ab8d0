package domain

import "context"

// VideoCatalog is the read-only set of videos available for a session
type VideoCatalog interface {
	// GetVideo returns the video with the given ID, or nil if there is none
	GetVideo(id string) *Video

	// GetAllVideos returns every video in load order
	GetAllVideos() []*Video
}

// VideoSource loads the raw list of videos that a catalog is built from
type VideoSource interface {
	LoadVideos(ctx context.Context) ([]*Video, error)
}
