// internal/browse/browse.go
//
// Filter/sort pipeline behind the home dashboard.
//
// All functions here are pure: they never mutate their input slice and
// return the same output for the same input. Filters are conjunctive.

package browse

import (
	"sort"
	"strings"

	"github.com/eabrahm-wq/GameDirectory/internal/catalog"
)

// All is the sentinel that disables a category/reset/difficulty filter.
const All = "all"

// TimeBucket partitions average completion time.
type TimeBucket string

const (
	AnyTime TimeBucket = "any"
	Quick   TimeBucket = "lte3"  // ≤ 3 min
	Medium  TimeBucket = "4to10" // 4–10 min inclusive
	Long    TimeBucket = "gt10"  // > 10 min
)

// TimeBuckets lists every bucket, "any" first.
var TimeBuckets = []TimeBucket{AnyTime, Quick, Medium, Long}

// Matches reports whether minutes falls in the bucket. AnyTime matches all.
func (b TimeBucket) Matches(minutes int) bool {
	switch b {
	case Quick:
		return minutes <= 3
	case Medium:
		return minutes >= 4 && minutes <= 10
	case Long:
		return minutes > 10
	}
	return true
}

// SortKey selects the result ordering.
type SortKey string

const (
	ByPopular    SortKey = "popular"
	ByAvgTime    SortKey = "avgTime"
	ByDifficulty SortKey = "difficulty"
)

// SortKeys lists every key, the default first.
var SortKeys = []SortKey{ByPopular, ByAvgTime, ByDifficulty}

// Criteria is one interaction's filter state. Empty string fields and All
// both disable the corresponding filter; an empty TimeBucket is AnyTime and
// an empty SortBy is ByPopular.
type Criteria struct {
	Search     string     `json:"search"`
	Category   string     `json:"category"`
	ResetType  string     `json:"resetType"`
	Difficulty string     `json:"difficulty"`
	TimeBucket TimeBucket `json:"timeBucket"`
	SortBy     SortKey    `json:"sortBy"`
}

// Defaults returns criteria that match everything in popularity order.
func Defaults() Criteria {
	return Criteria{Category: All, ResetType: All, Difficulty: All, TimeBucket: AnyTime, SortBy: ByPopular}
}

// Apply filters games by c and sorts the survivors by c.SortBy.
func Apply(games []catalog.Game, c Criteria) []catalog.Game {
	return Sort(Filter(games, c), c.SortBy)
}

// Filter keeps the games matching every active filter, in input order.
func Filter(games []catalog.Game, c Criteria) []catalog.Game {
	needle := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]catalog.Game, 0, len(games))
	for _, g := range games {
		if needle != "" && !strings.Contains(strings.ToLower(g.Name), needle) {
			continue
		}
		if active(c.Category) && string(g.Category) != c.Category {
			continue
		}
		if active(c.ResetType) && string(g.ResetType) != c.ResetType {
			continue
		}
		if active(c.Difficulty) && string(g.Difficulty) != c.Difficulty {
			continue
		}
		if !c.TimeBucket.Matches(g.AvgTimeMin) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func active(v string) bool { return v != "" && v != All }

// Sort returns a stably sorted copy of games.
//   - ByPopular:    ascending PopularityRank.
//   - ByAvgTime:    ascending AvgTimeMin; ties keep input order.
//   - ByDifficulty: ascending difficulty weight, then PopularityRank.
//
// Unknown keys sort by popularity.
func Sort(games []catalog.Game, key SortKey) []catalog.Game {
	out := make([]catalog.Game, len(games))
	copy(out, games)
	var less func(a, b catalog.Game) bool
	switch key {
	case ByAvgTime:
		less = func(a, b catalog.Game) bool { return a.AvgTimeMin < b.AvgTimeMin }
	case ByDifficulty:
		less = func(a, b catalog.Game) bool {
			wa, wb := a.Difficulty.Weight(), b.Difficulty.Weight()
			if wa != wb {
				return wa < wb
			}
			return a.PopularityRank < b.PopularityRank
		}
	default:
		less = byRank
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func byRank(a, b catalog.Game) bool { return a.PopularityRank < b.PopularityRank }

// InCategory keeps the games of one category, preserving order.
func InCategory(games []catalog.Game, cat catalog.Category) []catalog.Game {
	out := make([]catalog.Game, 0)
	for _, g := range games {
		if g.Category == cat {
			out = append(out, g)
		}
	}
	return out
}

// WithIDs keeps the games whose id is in ids, preserving game order.
func WithIDs(games []catalog.Game, ids []string) []catalog.Game {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]catalog.Game, 0, len(ids))
	for _, g := range games {
		if _, ok := want[g.ID]; ok {
			out = append(out, g)
		}
	}
	return out
}

// MorningMenu returns the favorited games sorted by popularity.
func MorningMenu(games []catalog.Game, favoriteIDs []string) []catalog.Game {
	return Sort(WithIDs(games, favoriteIDs), ByPopular)
}
