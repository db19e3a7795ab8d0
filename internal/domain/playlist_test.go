package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaylistMembership(t *testing.T) {
	cats := NewVideo("amazing_cats_video_id", "Amazing Cats", []string{"#cat", "#animal"})
	dogs := NewVideo("funny_dogs_video_id", "Funny Dogs", []string{"#dog", "#animal"})

	p := NewPlaylist("My Cool Playlist")

	assert.True(t, p.Append(cats))
	assert.True(t, p.Append(dogs))
	assert.False(t, p.Append(cats), "duplicate append should be rejected")
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []*Video{cats, dogs}, p.Videos())

	assert.True(t, p.Remove(cats))
	assert.False(t, p.Remove(cats))
	assert.False(t, p.Contains(cats))
	assert.Equal(t, []*Video{dogs}, p.Videos())

	p.Clear()
	assert.Equal(t, 0, p.Len())
	assert.True(t, p.Append(dogs), "cleared playlist should accept the video again")
}

func TestPlaylistKey(t *testing.T) {
	assert.Equal(t, "my cool playlist", PlaylistKey("My COOL Playlist"))
}

func TestVideoString(t *testing.T) {
	v := NewVideo("funny_dogs_video_id", "Funny Dogs", []string{"#dog", "#animal"})
	assert.Equal(t, "Funny Dogs (funny_dogs_video_id) [#dog #animal]", v.String())

	empty := NewVideo("nothing_video_id", "Video about nothing", nil)
	assert.Equal(t, "Video about nothing (nothing_video_id) []", empty.String())
}

func TestVideoHasTag(t *testing.T) {
	v := NewVideo("funny_dogs_video_id", "Funny Dogs", []string{"#dog", "#Animal"})
	assert.True(t, v.HasTag("#animal"))
	assert.True(t, v.HasTag("#DOG"))
	assert.False(t, v.HasTag("dog"))
}
