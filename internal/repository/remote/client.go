package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/PizzaHomicide/reel/internal/log"
	"github.com/machinebox/graphql"
)

const videosQuery = `
    query {
        videos {
            id
            title
            tags
        }
    }
`

// Source loads the video catalog from a GraphQL endpoint
type Source struct {
	client    *graphql.Client
	endpoint  string
	authToken string
}

func NewSource(endpoint, authToken string) (*Source, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("catalog endpoint is empty")
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	return &Source{
		client:    graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient)),
		endpoint:  endpoint,
		authToken: authToken,
	}, nil
}

func (s *Source) query(ctx context.Context, query string, result interface{}) error {
	req := graphql.NewRequest(query)

	if s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}

	return s.client.Run(ctx, req, result)
}

type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}

func (s *Source) LoadVideos(ctx context.Context) ([]*domain.Video, error) {
	log.Debug("Fetching catalog from remote", "endpoint", s.endpoint)

	var response struct {
		Videos []struct {
			ID    string
			Title string
			Tags  []string
		}
	}

	if err := s.query(ctx, videosQuery, &response); err != nil {
		var netErr *url.Error
		if errors.As(err, &netErr) && (netErr.Timeout() ||
			strings.Contains(err.Error(), "connection refused") ||
			strings.Contains(err.Error(), "no such host")) {
			return nil, NetworkError{Err: err}
		}
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}

	videos := make([]*domain.Video, 0, len(response.Videos))
	for _, v := range response.Videos {
		if v.ID == "" || v.Title == "" {
			log.Warn("Skipping remote video with missing id or title", "id", v.ID, "title", v.Title)
			continue
		}
		videos = append(videos, domain.NewVideo(v.ID, v.Title, v.Tags))
	}

	log.Info("Fetched remote catalog", "endpoint", s.endpoint, "count", len(videos))
	return videos, nil
}
