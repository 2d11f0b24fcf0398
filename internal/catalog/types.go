// internal/catalog/types.go
//
// Record types for the game catalog.
// Defines:
//   - Category, Difficulty, ResetType: closed enumerations used by filters and collections.
//   - Game: one catalog entry (immutable once loaded).
//   - TrendingItem / TrendingGame: the weekly trending notes, raw and joined.

package catalog

// Category groups games by the kind of puzzle they are.
type Category string

const (
	WordGames Category = "Word Games"
	Geography Category = "Geography"
	Logic     Category = "Logic"
	Strategy  Category = "Strategy"
	Trivia    Category = "Trivia"
	Visual    Category = "Visual"
	Math      Category = "Math"
)

// Categories lists every known category in default display order.
var Categories = []Category{WordGames, Geography, Logic, Strategy, Trivia, Visual, Math}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Difficulty is a coarse three-step rating.
type Difficulty string

const (
	Easy Difficulty = "Easy"
	Med  Difficulty = "Med"
	Hard Difficulty = "Hard"
)

// Difficulties lists the ratings from easiest to hardest.
var Difficulties = []Difficulty{Easy, Med, Hard}

// Weight orders difficulties: Easy=1, Med=2, Hard=3.
// Unknown values weigh 0.
func (d Difficulty) Weight() int {
	switch d {
	case Easy:
		return 1
	case Med:
		return 2
	case Hard:
		return 3
	}
	return 0
}

// ResetType is a game's reset cadence.
type ResetType string

const (
	Daily     ResetType = "Daily"     // new puzzle once per day
	Unlimited ResetType = "Unlimited" // always replayable
)

// ResetTypes lists both cadences.
var ResetTypes = []ResetType{Daily, Unlimited}

// Game is a single catalog entry.
type Game struct {
	ID             string     `json:"id" yaml:"id" validate:"required"`
	Name           string     `json:"name" yaml:"name" validate:"required"`
	Description    string     `json:"description" yaml:"description"`
	Category       Category   `json:"category" yaml:"category" validate:"required,category"`
	Difficulty     Difficulty `json:"difficulty" yaml:"difficulty" validate:"required,oneof=Easy Med Hard"`
	AvgTimeMin     int        `json:"avgTimeMin" yaml:"avgTimeMin" validate:"gt=0"`
	ResetType      ResetType  `json:"resetType" yaml:"resetType" validate:"required,oneof=Daily Unlimited"`
	Tags           []string   `json:"tags" yaml:"tags" validate:"dive,required"`
	PopularityRank int        `json:"popularityRank" yaml:"popularityRank" validate:"gt=0"`
	URL            string     `json:"url" yaml:"url" validate:"required,url"`
}

// HasTag reports whether the game carries tag (exact match).
func (g Game) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// clone returns a copy that shares no slices with g.
func (g Game) clone() Game {
	g.Tags = append([]string(nil), g.Tags...)
	return g
}

// TrendingItem is a raw trending note keyed by game id.
type TrendingItem struct {
	GameID string `json:"gameId" yaml:"gameId"`
	Note   string `json:"note" yaml:"note"`
}

// TrendingGame is a trending note joined with its catalog record.
type TrendingGame struct {
	Game Game   `json:"game"`
	Note string `json:"note"`
}
