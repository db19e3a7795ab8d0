package service

import (
	"bytes"
	"testing"

	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/PizzaHomicide/reel/internal/repository/library"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(videos []*domain.Video) []string {
	var out []string
	for _, v := range videos {
		out = append(out, v.Title)
	}
	return out
}

func TestSearchByTitle(t *testing.T) {
	s, _, _ := newTestSession(t)

	assert.Equal(t, []string{"Amazing Cats", "Another Cat Video"}, titles(s.Search.ByTitle("cat")))
	assert.Equal(t, []string{"Amazing Cats", "Another Cat Video"}, titles(s.Search.ByTitle("CAT")))
	assert.Empty(t, s.Search.ByTitle("blah"))
}

func TestSearchByTag(t *testing.T) {
	s, _, _ := newTestSession(t)

	assert.Equal(t, []string{"Amazing Cats", "Another Cat Video", "Funny Dogs"}, titles(s.Search.ByTag("#ANIMAL")))
	assert.Empty(t, s.Search.ByTag("animal"), "tags must match exactly")
	assert.Empty(t, s.Search.ByTag("#anim"))
}

func TestSearchDeduplicatesByTitle(t *testing.T) {
	catalog, err := library.NewCatalog([]*domain.Video{
		domain.NewVideo("b", "Same Title", nil),
		domain.NewVideo("a", "Same Title", nil),
		domain.NewVideo("c", "Another", nil),
	})
	require.NoError(t, err)

	search := NewSearchService(catalog, NewPlaybackService(catalog, &bytes.Buffer{}), &scriptedPrompter{}, &bytes.Buffer{})
	results := search.ByTitle("")
	assert.Equal(t, []string{"Another", "Same Title"}, titles(results))
	assert.Equal(t, "b", results[1].ID, "first catalog entry for a title wins")
}

func TestSearchExcludesFlagged(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Moderation.Flag("amazing_cats_video_id", "")

	assert.Equal(t, []string{"Another Cat Video"}, titles(s.Search.ByTitle("cat")))
}

func TestSearchTitleInteractive(t *testing.T) {
	catalog, err := library.NewCatalog([]*domain.Video{
		domain.NewVideo("amazing_cats_video_id", "Amazing Cats", []string{"#cat", "#animal"}),
		domain.NewVideo("dog_video_id", "Dog Video", []string{"#dog"}),
	})
	require.NoError(t, err)

	t.Run("ValidSelection", func(t *testing.T) {
		out := &bytes.Buffer{}
		prompter := &scriptedPrompter{answers: []string{"1"}}
		s := NewSession(catalog, out, prompter)

		assert.Equal(t, SelectionPlayed, s.Search.SearchTitle("cat"))
		assert.Equal(t, []string{
			"Here are the results for cat:",
			"  1) Amazing Cats (amazing_cats_video_id) [#cat #animal]",
			"Would you like to play any of the above? If yes, specify the number of the video.",
			"If your answer is not a valid number, we will assume it's a no.",
			"Playing video: Amazing Cats",
		}, lines(out))
		require.NotNil(t, s.Playback.Current())
		assert.Equal(t, "amazing_cats_video_id", s.Playback.Current().ID)
		s.Playback.Stop()
	})

	for _, tc := range []struct {
		answer string
		want   Selection
	}{
		{"abc", SelectionNotANumber},
		{"99", SelectionOutOfRange},
		{"0", SelectionOutOfRange},
		{"", SelectionNotANumber},
	} {
		t.Run("Ignored_"+tc.want.String(), func(t *testing.T) {
			out := &bytes.Buffer{}
			s := NewSession(catalog, out, &scriptedPrompter{answers: []string{tc.answer}})

			assert.Equal(t, tc.want, s.Search.SearchTitle("cat"))
			output := lines(out)
			assert.Len(t, output, 4, "nothing should be printed after the prompt")
			assert.Nil(t, s.Playback.Current())
		})
	}

	t.Run("PromptError", func(t *testing.T) {
		out := &bytes.Buffer{}
		s := NewSession(catalog, out, failingPrompter{})

		assert.Equal(t, SelectionNoInput, s.Search.SearchTitle("cat"))
		assert.Len(t, lines(out), 4)
		assert.Nil(t, s.Playback.Current())
	})
}

func TestSearchNoResults(t *testing.T) {
	s, out, prompter := newTestSession(t, "1")

	assert.Equal(t, SelectionNoResults, s.Search.SearchTag("#blah"))
	assert.Equal(t, []string{"No search results for #blah"}, lines(out))
	assert.Equal(t, 0, prompter.asked, "no prompt without results")
}

func TestSearchTagInteractive(t *testing.T) {
	s, out, _ := newTestSession(t, "2")

	s.Search.SearchTag("#cat")
	assert.Equal(t, []string{
		"Here are the results for #cat:",
		"  1) Amazing Cats (amazing_cats_video_id) [#cat #animal]",
		"  2) Another Cat Video (another_cat_video_id) [#cat #animal]",
		"Would you like to play any of the above? If yes, specify the number of the video.",
		"If your answer is not a valid number, we will assume it's a no.",
		"Playing video: Another Cat Video",
	}, lines(out))
}

func TestSelectResult(t *testing.T) {
	results := []*domain.Video{
		domain.NewVideo("a", "A", nil),
		domain.NewVideo("b", "B", nil),
	}

	v, outcome := SelectResult(results, " 2 ")
	assert.Equal(t, SelectionPlayed, outcome)
	assert.Equal(t, "b", v.ID)

	v, outcome = SelectResult(results, "3")
	assert.Nil(t, v)
	assert.Equal(t, SelectionOutOfRange, outcome)

	v, outcome = SelectResult(results, "-1")
	assert.Nil(t, v)
	assert.Equal(t, SelectionOutOfRange, outcome)

	v, outcome = SelectResult(results, "two")
	assert.Nil(t, v)
	assert.Equal(t, SelectionNotANumber, outcome)
}
