// internal/daily/daily.go
//
// Reset-clock helpers for daily games.
//
// Daily puzzles roll over at local midnight. HoursUntilMidnight reports how
// long is left in the visitor's day, and Watch recomputes it on a coarse
// timer so a long-lived view picks up the new day without a reload.

package daily

import (
	"context"
	"math"
	"time"
)

// DefaultInterval is how often Watch recomputes. Minute precision is enough.
const DefaultInterval = time.Minute

// DateKey returns YYYY-MM-DD in t's own location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// NextMidnight returns the first midnight strictly after now, in now's location.
// time.Date normalises day overflow and DST gaps.
func NextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// HoursUntilMidnight returns the hours left until the next local midnight,
// rounded up and never less than 1.
//
//	23:00 → 1
//	00:01 → 24
func HoursUntilMidnight(now time.Time) int {
	left := NextMidnight(now).Sub(now)
	h := int(math.Ceil(left.Hours()))
	if h < 1 {
		return 1
	}
	return h
}

// Watch calls fn with the current hours-until-reset immediately and then on
// every tick of interval, until ctx is cancelled. now defaults to time.Now and
// interval to DefaultInterval. fn runs on the calling goroutine.
func Watch(ctx context.Context, interval time.Duration, now func() time.Time, fn func(hours int)) {
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	fn(HoursUntilMidnight(now()))

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			fn(HoursUntilMidnight(now()))
		}
	}
}

// Location resolves an IANA zone name. Empty, "Local" and unknown names all
// resolve to fallback (time.Local when fallback is nil).
func Location(name string, fallback *time.Location) *time.Location {
	if fallback == nil {
		fallback = time.Local
	}
	if name == "" || name == "Local" {
		return fallback
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fallback
	}
	return loc
}
