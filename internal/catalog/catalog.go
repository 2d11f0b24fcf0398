// internal/catalog/catalog.go
//
// Loads and serves the read-only game catalog.
//
// Responsibilities:
//   - Decode the catalog YAML document (embedded by default).
//   - Validate every record (validator tags + id uniqueness).
//   - Expose copies of the records, the category display order,
//     the essentials list, and the trending notes.
//
// Initialization behavior (Load):
//   1. If CATALOG_FILE is set, read that YAML file instead of the embedded one.
//   2. Otherwise decode assets/catalog.yaml.
//   Either way the result is cached (sync.Once); later calls return the same catalog.

package catalog

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/eabrahm-wq/GameDirectory/assets"
)

// ErrNotFound is returned by Lookup for ids missing from the catalog.
var ErrNotFound = errors.New("catalog: game not found")

// document mirrors the YAML layout.
type document struct {
	CategoryOrder []Category     `yaml:"categoryOrder"`
	Essentials    []string       `yaml:"essentials"`
	Trending      []TrendingItem `yaml:"trending"`
	Games         []Game         `yaml:"games"`
}

// Catalog is an immutable, validated set of games.
type Catalog struct {
	games      []Game
	byID       map[string]int
	order      []Category
	essentials []string
	trending   []TrendingItem
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).Valid()
	})
	return v
}

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

// Load returns the process-wide catalog, reading it on first use.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		var data []byte
		if path := os.Getenv("CATALOG_FILE"); path != "" {
			data, loadErr = os.ReadFile(path)
			if loadErr != nil {
				loadErr = fmt.Errorf("read catalog %s: %w", path, loadErr)
				return
			}
		} else {
			data, loadErr = assets.CatalogYAML()
			if loadErr != nil {
				loadErr = fmt.Errorf("read embedded catalog: %w", loadErr)
				return
			}
		}
		loaded, loadErr = Parse(data)
	})
	return loaded, loadErr
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Games, doc.CategoryOrder, doc.Essentials, doc.Trending)
}

// New builds a catalog from records. order defaults to Categories when empty.
func New(games []Game, order []Category, essentials []string, trending []TrendingItem) (*Catalog, error) {
	c := &Catalog{
		games:      make([]Game, 0, len(games)),
		byID:       make(map[string]int, len(games)),
		essentials: append([]string(nil), essentials...),
		trending:   append([]TrendingItem(nil), trending...),
	}

	if len(order) == 0 {
		order = Categories
	}
	for _, cat := range order {
		if !cat.Valid() {
			return nil, fmt.Errorf("category order: unknown category %q", cat)
		}
	}
	c.order = append([]Category(nil), order...)

	for i, g := range games {
		if err := validate.Struct(g); err != nil {
			return nil, fmt.Errorf("game #%d (%q): %w", i, g.ID, err)
		}
		if _, dup := c.byID[g.ID]; dup {
			return nil, fmt.Errorf("game #%d: duplicate id %q", i, g.ID)
		}
		c.byID[g.ID] = len(c.games)
		c.games = append(c.games, g.clone())
	}
	return c, nil
}

// Len is the number of games.
func (c *Catalog) Len() int { return len(c.games) }

// Games returns a copy of every record in catalog order.
func (c *Catalog) Games() []Game {
	out := make([]Game, len(c.games))
	for i, g := range c.games {
		out[i] = g.clone()
	}
	return out
}

// Get returns the game with id.
func (c *Catalog) Get(id string) (Game, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Game{}, false
	}
	return c.games[i].clone(), true
}

// Lookup is Get with an error for missing ids.
func (c *Catalog) Lookup(id string) (Game, error) {
	g, ok := c.Get(id)
	if !ok {
		return Game{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return g, nil
}

// CategoryOrder returns the display order of category sections.
func (c *Catalog) CategoryOrder() []Category {
	return append([]Category(nil), c.order...)
}

// EssentialIDs returns the ids of the essentials shortlist. Ids that are
// not in the catalog are skipped.
func (c *Catalog) EssentialIDs() []string {
	out := make([]string, 0, len(c.essentials))
	for _, id := range c.essentials {
		if _, ok := c.byID[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Trending joins the trending notes with their games, in note order,
// dropping notes whose game is missing.
func (c *Catalog) Trending() []TrendingGame {
	out := make([]TrendingGame, 0, len(c.trending))
	for _, item := range c.trending {
		if g, ok := c.Get(item.GameID); ok {
			out = append(out, TrendingGame{Game: g, Note: item.Note})
		}
	}
	return out
}
