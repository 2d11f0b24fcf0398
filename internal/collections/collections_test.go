package collections

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eabrahm-wq/GameDirectory/internal/catalog"
)

func g(id, name string, cat catalog.Category, diff catalog.Difficulty, reset catalog.ResetType, rank int, tags ...string) catalog.Game {
	return catalog.Game{
		ID: id, Name: name, Category: cat, Difficulty: diff, ResetType: reset,
		AvgTimeMin: 5, PopularityRank: rank, Tags: tags, URL: "https://example.com/" + id,
	}
}

func ids(games []catalog.Game) []string {
	out := make([]string, len(games))
	for i, x := range games {
		out[i] = x.ID
	}
	return out
}

func TestHardWordAndWordleLikeScenario(t *testing.T) {
	games := []catalog.Game{
		g("hard", "Hard Word", catalog.WordGames, catalog.Hard, catalog.Daily, 3, "wordle-like"),
		g("easy", "Easy Word", catalog.WordGames, catalog.Easy, catalog.Daily, 1),
	}

	hard := Config{Slug: "hard-word-games", Title: "t", Criteria: Criteria{Category: catalog.WordGames, Difficulty: catalog.Hard}}
	assert.Equal(t, []string{"hard"}, ids(Match(hard, games)))

	like := Config{Slug: "games-like-wordle", Title: "t", Criteria: Criteria{RequiredTags: []string{"wordle-like"}}}
	assert.Equal(t, []string{"hard"}, ids(Match(like, games)))
}

func TestMatchEmptyCriteriaSortsByRank(t *testing.T) {
	games := []catalog.Game{
		g("c", "C", catalog.Logic, catalog.Med, catalog.Daily, 30),
		g("a", "A", catalog.Math, catalog.Easy, catalog.Unlimited, 10),
		g("b", "B", catalog.Trivia, catalog.Hard, catalog.Daily, 20),
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids(Match(Config{}, games)))
	assert.Equal(t, []string{"c", "a", "b"}, ids(games), "input must not be reordered")
}

func TestMatchResetAndNameIncludes(t *testing.T) {
	games := []catalog.Game{
		g("worldle", "Worldle", catalog.Geography, catalog.Easy, catalog.Daily, 4),
		g("globle", "Globle", catalog.Geography, catalog.Easy, catalog.Daily, 8),
		g("lichess", "Lichess Puzzles", catalog.Strategy, catalog.Med, catalog.Unlimited, 20),
	}
	cfg := Config{Criteria: Criteria{RequiredNameIncludes: []string{"WORLD", "puzzle"}}}
	assert.Equal(t, []string{"worldle", "lichess"}, ids(Match(cfg, games)))

	cfg = Config{Criteria: Criteria{ResetType: catalog.Daily, RequiredNameIncludes: []string{"le"}}}
	assert.Equal(t, []string{"worldle", "globle"}, ids(Match(cfg, games)))
}

func TestMatchTruncatesToLowestRanks(t *testing.T) {
	var games []catalog.Game
	for rank := 20; rank >= 1; rank-- {
		games = append(games, g(fmt.Sprintf("g%02d", rank), "x", catalog.Logic, catalog.Easy, catalog.Daily, rank, "t"))
	}
	cfg := Config{Criteria: Criteria{RequiredTags: []string{"t"}}, MaxItems: 5}
	got := Match(cfg, games)
	require.Len(t, got, 5)
	assert.Equal(t, []string{"g01", "g02", "g03", "g04", "g05"}, ids(got))

	cfg.MaxItems = 50
	assert.Len(t, Match(cfg, games), 20)
}

func TestMatchIsDeterministic(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)
	set, err := Load()
	require.NoError(t, err)
	for _, cfg := range set.All() {
		assert.Equal(t, ids(Match(cfg, c.Games())), ids(Match(cfg, c.Games())), cfg.Slug)
	}
}

func TestEmbeddedCollections(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"games-like-wordle", "geography-like-wordle", "hard-word-games", "daily-puzzle-games"}, set.Slugs())

	c, err := catalog.Load()
	require.NoError(t, err)

	like, ok := set.BySlug("games-like-wordle")
	require.True(t, ok)
	got := Match(like, c.Games())
	assert.Len(t, got, 14)
	assert.Equal(t, "wordle", got[0].ID)

	hard, err := set.Lookup("hard-word-games")
	require.NoError(t, err)
	for _, x := range Match(hard, c.Games()) {
		assert.Equal(t, catalog.WordGames, x.Category)
		assert.Equal(t, catalog.Hard, x.Difficulty)
	}
	assert.Contains(t, ids(Match(hard, c.Games())), "contexto")

	geo, _ := set.BySlug("geography-like-wordle")
	for _, x := range Match(geo, c.Games()) {
		assert.Equal(t, catalog.Geography, x.Category)
	}
}

func TestLookupFailsClosed(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)
	_, ok := set.BySlug("nope")
	assert.False(t, ok)
	_, err = set.Lookup("nope")
	assert.True(t, errors.Is(err, ErrUnknownSlug))
}

func TestRelated(t *testing.T) {
	set, err := NewSet([]Config{{Slug: "a", Title: "A"}, {Slug: "b", Title: "B"}, {Slug: "c", Title: "C"}})
	require.NoError(t, err)
	rel := set.Related("b")
	require.Len(t, rel, 2)
	assert.Equal(t, "a", rel[0].Slug)
	assert.Equal(t, "c", rel[1].Slug)
	assert.Equal(t, "/collections/a", rel[0].Path())
}

func TestNewSetValidation(t *testing.T) {
	_, err := NewSet([]Config{{Slug: "a", Title: "A"}, {Slug: "a", Title: "B"}})
	assert.ErrorContains(t, err, "duplicate slug")

	_, err = NewSet([]Config{{Title: "no slug"}})
	assert.Error(t, err)

	_, err = NewSet([]Config{{Slug: "neg", Title: "x", MaxItems: -1}})
	assert.Error(t, err)

	_, err = NewSet([]Config{{Slug: "bad", Title: "x", Criteria: Criteria{Difficulty: "Brutal"}}})
	assert.Error(t, err)
}

func TestFAQSchema(t *testing.T) {
	cfg := Config{Slug: "s", Title: "t", FAQ: []FAQ{{Question: "Q1?", Answer: "A1."}, {Question: "Q2?", Answer: "A2."}}}
	raw, err := FAQJSON(cfg)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "https://schema.org", doc["@context"])
	assert.Equal(t, "FAQPage", doc["@type"])

	entities := doc["mainEntity"].([]any)
	require.Len(t, entities, 2)
	first := entities[0].(map[string]any)
	assert.Equal(t, "Question", first["@type"])
	assert.Equal(t, "Q1?", first["name"])
	answer := first["acceptedAnswer"].(map[string]any)
	assert.Equal(t, "Answer", answer["@type"])
	assert.Equal(t, "A1.", answer["text"])
}
