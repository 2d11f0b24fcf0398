package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGame(id string, rank int) Game {
	return Game{
		ID:             id,
		Name:           "Game " + id,
		Category:       WordGames,
		Difficulty:     Easy,
		AvgTimeMin:     3,
		ResetType:      Daily,
		Tags:           []string{"wordle-like"},
		PopularityRank: rank,
		URL:            "https://example.com/" + id,
	}
}

func TestEmbeddedCatalogLoads(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.NotZero(t, c.Len())

	seen := map[string]bool{}
	for _, g := range c.Games() {
		assert.False(t, seen[g.ID], "duplicate id %s", g.ID)
		seen[g.ID] = true
		assert.True(t, g.Category.Valid(), g.ID)
		assert.Positive(t, g.AvgTimeMin, g.ID)
		assert.Positive(t, g.PopularityRank, g.ID)
	}

	assert.Equal(t, Categories, c.CategoryOrder())
	assert.NotEmpty(t, c.EssentialIDs())
	assert.Len(t, c.Trending(), 5)
}

func TestNewRejectsInvalidRecords(t *testing.T) {
	tests := map[string]func(g *Game){
		"missing id":        func(g *Game) { g.ID = "" },
		"unknown category":  func(g *Game) { g.Category = "Puzzles" },
		"unknown level":     func(g *Game) { g.Difficulty = "Extreme" },
		"zero minutes":      func(g *Game) { g.AvgTimeMin = 0 },
		"unknown cadence":   func(g *Game) { g.ResetType = "Weekly" },
		"zero rank":         func(g *Game) { g.PopularityRank = 0 },
		"relative url":      func(g *Game) { g.URL = "/play" },
		"empty tag element": func(g *Game) { g.Tags = []string{""} },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			g := sampleGame("a", 1)
			mutate(&g)
			_, err := New([]Game{g}, nil, nil, nil)
			assert.Error(t, err)
		})
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Game{sampleGame("a", 1), sampleGame("a", 2)}, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestNewRejectsUnknownCategoryOrder(t *testing.T) {
	_, err := New([]Game{sampleGame("a", 1)}, []Category{"Board"}, nil, nil)
	assert.Error(t, err)
}

func TestGamesReturnsCopies(t *testing.T) {
	c, err := New([]Game{sampleGame("a", 1)}, nil, nil, nil)
	require.NoError(t, err)

	games := c.Games()
	games[0].Name = "changed"
	games[0].Tags[0] = "changed"

	g, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Game a", g.Name)
	assert.Equal(t, []string{"wordle-like"}, g.Tags)
}

func TestLookup(t *testing.T) {
	c, err := New([]Game{sampleGame("a", 1)}, nil, nil, nil)
	require.NoError(t, err)

	g, err := c.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "a", g.ID)

	_, err = c.Lookup("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEssentialsAndTrendingSkipUnknownIDs(t *testing.T) {
	c, err := New(
		[]Game{sampleGame("a", 1), sampleGame("b", 2)},
		nil,
		[]string{"b", "ghost", "a"},
		[]TrendingItem{{GameID: "ghost", Note: "x"}, {GameID: "a", Note: "hot"}},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, c.EssentialIDs())
	tr := c.Trending()
	require.Len(t, tr, 1)
	assert.Equal(t, "a", tr[0].Game.ID)
	assert.Equal(t, "hot", tr[0].Note)
}

func TestParse(t *testing.T) {
	doc := []byte(`
categoryOrder: [Logic, Word Games]
games:
  - id: queens
    name: Queens
    category: Logic
    difficulty: Med
    avgTimeMin: 4
    resetType: Daily
    popularityRank: 2
    url: https://example.com/queens
`)
	c, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, []Category{Logic, WordGames}, c.CategoryOrder())
	g, ok := c.Get("queens")
	require.True(t, ok)
	assert.Equal(t, Med, g.Difficulty)
	assert.Equal(t, 2, g.Difficulty.Weight())

	_, err = Parse([]byte("games: {not: a list"))
	assert.Error(t, err)
}

func TestDifficultyWeight(t *testing.T) {
	assert.Equal(t, 1, Easy.Weight())
	assert.Equal(t, 2, Med.Weight())
	assert.Equal(t, 3, Hard.Weight())
	assert.Equal(t, 0, Difficulty("?").Weight())
}
