package collections

import (
	"sort"
	"strings"

	"github.com/eabrahm-wq/GameDirectory/internal/catalog"
)

// Matches reports whether g satisfies every set field of c.
func (c Criteria) Matches(g catalog.Game) bool {
	if c.Category != "" && g.Category != c.Category {
		return false
	}
	if c.Difficulty != "" && g.Difficulty != c.Difficulty {
		return false
	}
	if c.ResetType != "" && g.ResetType != c.ResetType {
		return false
	}
	if len(c.RequiredTags) > 0 && !anyTag(g, c.RequiredTags) {
		return false
	}
	if len(c.RequiredNameIncludes) > 0 && !nameIncludesAny(g.Name, c.RequiredNameIncludes) {
		return false
	}
	return true
}

func anyTag(g catalog.Game, tags []string) bool {
	for _, t := range tags {
		if g.HasTag(t) {
			return true
		}
	}
	return false
}

func nameIncludesAny(name string, needles []string) bool {
	name = strings.ToLower(name)
	for _, n := range needles {
		if strings.Contains(name, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// Match returns the games belonging to the collection, sorted by
// ascending PopularityRank and truncated to MaxItems when it is set.
// games is not modified.
func Match(cfg Config, games []catalog.Game) []catalog.Game {
	out := make([]catalog.Game, 0, len(games))
	for _, g := range games {
		if cfg.Criteria.Matches(g) {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PopularityRank < out[j].PopularityRank })
	if cfg.MaxItems > 0 && len(out) > cfg.MaxItems {
		out = out[:cfg.MaxItems]
	}
	return out
}
