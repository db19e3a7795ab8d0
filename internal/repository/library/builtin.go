package library

import (
	"context"
	_ "embed"

	"github.com/PizzaHomicide/reel/internal/domain"
)

//go:embed videos.txt
var builtinVideos []byte

// BuiltinSource serves the sample catalog compiled into the binary
type BuiltinSource struct{}

func (BuiltinSource) LoadVideos(_ context.Context) ([]*domain.Video, error) {
	return ParseText(builtinVideos)
}
