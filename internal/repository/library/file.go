package library

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PizzaHomicide/reel/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileSource loads videos from a file on disk.  Files ending in .yaml or .yml are parsed as YAML, anything else is
// treated as the pipe separated text format.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) LoadVideos(_ context.Context) ([]*domain.Video, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("unable to read catalog file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseText(data)
	}
}

// ParseText parses the text catalog format.  Each non-blank line holds one video:
//
//	Funny Dogs | funny_dogs_video_id | #dog , #animal
//
// The tag column is optional.
func ParseText(data []byte) ([]*domain.Video, error) {
	var videos []*domain.Video

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected 'title | id | tags', got %q", lineNum, line)
		}

		title := strings.TrimSpace(fields[0])
		id := strings.TrimSpace(fields[1])
		if title == "" || id == "" {
			return nil, fmt.Errorf("line %d: title and id must not be empty", lineNum)
		}

		var tags []string
		if len(fields) > 2 {
			tags = splitTags(fields[2])
		}

		videos = append(videos, domain.NewVideo(id, title, tags))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to scan catalog: %w", err)
	}

	return videos, nil
}

func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

type yamlCatalog struct {
	Videos []struct {
		ID    string   `yaml:"id"`
		Title string   `yaml:"title"`
		Tags  []string `yaml:"tags,omitempty"`
	} `yaml:"videos"`
}

// ParseYAML parses a catalog of the form:
//
//	videos:
//	  - id: funny_dogs_video_id
//	    title: Funny Dogs
//	    tags: ["#dog", "#animal"]
func ParseYAML(data []byte) ([]*domain.Video, error) {
	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unable to parse catalog file: %w", err)
	}

	videos := make([]*domain.Video, 0, len(doc.Videos))
	for i, entry := range doc.Videos {
		if entry.ID == "" || entry.Title == "" {
			return nil, fmt.Errorf("video %d: title and id must not be empty", i+1)
		}
		videos = append(videos, domain.NewVideo(entry.ID, entry.Title, entry.Tags))
	}
	return videos, nil
}
