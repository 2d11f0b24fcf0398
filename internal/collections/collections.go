// internal/collections/collections.go
//
// Topic collections: named, rule-defined subsets of the catalog that are
// pre-rendered as their own pages at /collections/<slug>.
//
// Responsibilities:
//   - Decode and validate the compiled-in collection configs.
//   - Look collections up by slug (fails closed for unknown slugs).
//   - Match a config against the catalog (see Match).
//
// Configs are loaded once and never change at runtime.

package collections

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/eabrahm-wq/GameDirectory/assets"
	"github.com/eabrahm-wq/GameDirectory/internal/catalog"
)

// ErrUnknownSlug is returned by Lookup for slugs with no config.
var ErrUnknownSlug = errors.New("collections: unknown slug")

// FAQ is one question/answer pair shown on the page and in the JSON-LD block.
type FAQ struct {
	Question string `json:"question" yaml:"question" validate:"required"`
	Answer   string `json:"answer" yaml:"answer" validate:"required"`
}

// Criteria selects collection members. Every set field must match; a
// zero field is ignored. RequiredTags and RequiredNameIncludes are
// "any of" lists.
type Criteria struct {
	Category             catalog.Category   `json:"category,omitempty" yaml:"category"`
	Difficulty           catalog.Difficulty `json:"difficulty,omitempty" yaml:"difficulty" validate:"omitempty,oneof=Easy Med Hard"`
	ResetType            catalog.ResetType  `json:"resetType,omitempty" yaml:"resetType" validate:"omitempty,oneof=Daily Unlimited"`
	RequiredTags         []string           `json:"requiredTags,omitempty" yaml:"requiredTags"`
	RequiredNameIncludes []string           `json:"requiredNameIncludes,omitempty" yaml:"requiredNameIncludes"`
}

// Config describes one collection page.
type Config struct {
	Slug        string   `json:"slug" yaml:"slug" validate:"required"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Description string   `json:"description" yaml:"description"`
	Intro       string   `json:"intro" yaml:"intro"`
	FAQ         []FAQ    `json:"faq" yaml:"faq" validate:"dive"`
	Criteria    Criteria `json:"criteria" yaml:"criteria"`
	MaxItems    int      `json:"maxItems,omitempty" yaml:"maxItems" validate:"gte=0"` // 0 = no cap
}

// Path is the canonical URL path of the collection page.
func (c Config) Path() string { return "/collections/" + c.Slug }

var validate = validator.New()

// Set is an ordered, slug-indexed group of configs.
type Set struct {
	configs []Config
	bySlug  map[string]int
}

// NewSet validates configs and indexes them by slug.
func NewSet(configs []Config) (*Set, error) {
	s := &Set{bySlug: make(map[string]int, len(configs))}
	for i, c := range configs {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("collection #%d (%q): %w", i, c.Slug, err)
		}
		if _, dup := s.bySlug[c.Slug]; dup {
			return nil, fmt.Errorf("collection #%d: duplicate slug %q", i, c.Slug)
		}
		s.bySlug[c.Slug] = len(s.configs)
		s.configs = append(s.configs, c)
	}
	return s, nil
}

// Parse decodes a YAML list of configs.
func Parse(data []byte) (*Set, error) {
	var configs []Config
	if err := yaml.Unmarshal(data, &configs); err != nil {
		return nil, fmt.Errorf("decode collections: %w", err)
	}
	return NewSet(configs)
}

var (
	loadOnce sync.Once
	loaded   *Set
	loadErr  error
)

// Load returns the compiled-in collection set, decoding it on first use.
func Load() (*Set, error) {
	loadOnce.Do(func() {
		data, err := assets.CollectionsYAML()
		if err != nil {
			loadErr = fmt.Errorf("read embedded collections: %w", err)
			return
		}
		loaded, loadErr = Parse(data)
	})
	return loaded, loadErr
}

// All returns every config in declaration order.
func (s *Set) All() []Config {
	return append([]Config(nil), s.configs...)
}

// Slugs returns every slug in declaration order.
func (s *Set) Slugs() []string {
	out := make([]string, len(s.configs))
	for i, c := range s.configs {
		out[i] = c.Slug
	}
	return out
}

// BySlug returns the config for slug.
func (s *Set) BySlug(slug string) (Config, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Config{}, false
	}
	return s.configs[i], true
}

// Lookup is BySlug with ErrUnknownSlug for missing slugs.
func (s *Set) Lookup(slug string) (Config, error) {
	c, ok := s.BySlug(slug)
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownSlug, slug)
	}
	return c, nil
}

// Related returns every config except slug, in declaration order.
func (s *Set) Related(slug string) []Config {
	out := make([]Config, 0, len(s.configs))
	for _, c := range s.configs {
		if c.Slug != slug {
			out = append(out, c)
		}
	}
	return out
}
