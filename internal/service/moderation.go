package service

import (
	"io"
	"strings"

	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/PizzaHomicide/reel/internal/log"
)

// ModerationService flags videos so they can no longer be played, and allows them again
type ModerationService struct {
	catalog  domain.VideoCatalog
	playback *PlaybackService
	out      io.Writer
}

func NewModerationService(catalog domain.VideoCatalog, playback *PlaybackService, out io.Writer) *ModerationService {
	return &ModerationService{
		catalog:  catalog,
		playback: playback,
		out:      out,
	}
}

// Flag marks a video as flagged.  A flagged video that is currently selected gets stopped.
func (s *ModerationService) Flag(videoID, reason string) {
	video := s.catalog.GetVideo(videoID)
	if video == nil {
		say(s.out, "Cannot flag video: Video does not exist")
		return
	}
	if video.Flagged {
		say(s.out, "Cannot flag video: Video is already flagged")
		return
	}

	if reason = strings.TrimSpace(reason); reason == "" {
		reason = domain.DefaultFlagReason
	}

	if current := s.playback.Current(); current != nil && current.ID == video.ID {
		s.playback.Stop()
	}

	video.Flagged = true
	video.FlagReason = reason
	log.Info("Flagged video", "id", video.ID, "reason", reason)
	say(s.out, "Successfully flagged video: %s (reason: %s)", video.Title, reason)
}

// Allow removes the flag from a video
func (s *ModerationService) Allow(videoID string) {
	video := s.catalog.GetVideo(videoID)
	if video == nil {
		say(s.out, "Cannot remove flag from video: Video does not exist")
		return
	}
	if !video.Flagged {
		say(s.out, "Cannot remove flag from video: Video is not flagged")
		return
	}

	video.Flagged = false
	video.FlagReason = ""
	log.Info("Allowed video", "id", video.ID)
	say(s.out, "Successfully removed flag from video: %s", video.Title)
}
