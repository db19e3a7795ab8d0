package library

import (
	"context"
	"errors"
	"fmt"

	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/PizzaHomicide/reel/internal/log"
)

// ErrDuplicateID is returned when two videos in a source share an ID
var ErrDuplicateID = errors.New("duplicate video id")

// Catalog is the in-memory, read-only implementation of domain.VideoCatalog
type Catalog struct {
	videos []*domain.Video
	byID   map[string]*domain.Video
}

// NewCatalog builds a catalog from the given videos, preserving their order
func NewCatalog(videos []*domain.Video) (*Catalog, error) {
	c := &Catalog{
		videos: make([]*domain.Video, 0, len(videos)),
		byID:   make(map[string]*domain.Video, len(videos)),
	}
	for _, v := range videos {
		if _, exists := c.byID[v.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, v.ID)
		}
		c.byID[v.ID] = v
		c.videos = append(c.videos, v)
	}
	return c, nil
}

// Load reads every video from the source and builds a catalog from them
func Load(ctx context.Context, source domain.VideoSource) (*Catalog, error) {
	videos, err := source.LoadVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading videos: %w", err)
	}

	catalog, err := NewCatalog(videos)
	if err != nil {
		return nil, err
	}

	log.Info("Loaded video catalog", "count", len(videos))
	return catalog, nil
}

func (c *Catalog) GetVideo(id string) *domain.Video {
	return c.byID[id]
}

func (c *Catalog) GetAllVideos() []*domain.Video {
	return append([]*domain.Video(nil), c.videos...)
}
