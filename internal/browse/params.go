package browse

import (
	"net/url"
	"strings"

	"github.com/eabrahm-wq/GameDirectory/internal/catalog"
)

// Query parameter names used by the dashboard form and the JSON API.
const (
	ParamSearch     = "q"
	ParamCategory   = "category"
	ParamReset      = "reset"
	ParamDifficulty = "difficulty"
	ParamTime       = "time"
	ParamSort       = "sort"
)

// ParseCriteria maps query parameters onto Criteria. Values outside the
// recognised sets fall back to the disabled filter / default sort, so the
// result is always inside Filter's input contract.
func ParseCriteria(v url.Values) Criteria {
	c := Defaults()
	c.Search = strings.TrimSpace(v.Get(ParamSearch))

	if cat := v.Get(ParamCategory); catalog.Category(cat).Valid() {
		c.Category = cat
	}
	for _, rt := range catalog.ResetTypes {
		if v.Get(ParamReset) == string(rt) {
			c.ResetType = string(rt)
		}
	}
	for _, d := range catalog.Difficulties {
		if v.Get(ParamDifficulty) == string(d) {
			c.Difficulty = string(d)
		}
	}
	for _, b := range TimeBuckets {
		if v.Get(ParamTime) == string(b) {
			c.TimeBucket = b
		}
	}
	for _, k := range SortKeys {
		if v.Get(ParamSort) == string(k) {
			c.SortBy = k
		}
	}
	return c
}

// Values is the inverse of ParseCriteria. Disabled filters are omitted.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if c.Search != "" {
		v.Set(ParamSearch, c.Search)
	}
	if active(c.Category) {
		v.Set(ParamCategory, c.Category)
	}
	if active(c.ResetType) {
		v.Set(ParamReset, c.ResetType)
	}
	if active(c.Difficulty) {
		v.Set(ParamDifficulty, c.Difficulty)
	}
	if c.TimeBucket != "" && c.TimeBucket != AnyTime {
		v.Set(ParamTime, string(c.TimeBucket))
	}
	if c.SortBy != "" && c.SortBy != ByPopular {
		v.Set(ParamSort, string(c.SortBy))
	}
	return v
}
