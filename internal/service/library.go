package service

import (
	"io"
	"sort"

	"github.com/PizzaHomicide/reel/internal/domain"
)

// LibraryService answers questions about the catalog as a whole
type LibraryService struct {
	catalog domain.VideoCatalog
	out     io.Writer
}

func NewLibraryService(catalog domain.VideoCatalog, out io.Writer) *LibraryService {
	return &LibraryService{catalog: catalog, out: out}
}

func (s *LibraryService) Count() {
	say(s.out, "%d videos in the library", len(s.catalog.GetAllVideos()))
}

// ShowAll lists every video ordered by its rendered `title (id) [tags]` line
func (s *LibraryService) ShowAll() {
	videos := s.catalog.GetAllVideos()
	rendered := make(map[*domain.Video]string, len(videos))
	for _, v := range videos {
		rendered[v] = v.String()
	}
	sort.Slice(videos, func(i, j int) bool {
		return rendered[videos[i]] < rendered[videos[j]]
	})

	say(s.out, "Here's a list of all available videos:")
	for _, v := range videos {
		say(s.out, "  %s%s", rendered[v], flagSuffix(v.Flagged, v.FlagReason))
	}
}
