// Package timefmt renders compact relative timestamps for list items and
// notices.
package timefmt

import (
	"strconv"
	"time"

	"github.com/colonyops/msgview/internal/core/i18n"
)

// Relative formats t as seen at now: "Now" under a minute (or in the
// future), minutes under an hour, hours under a day, the weekday within a
// week, then the date.
func Relative(loc i18n.Translator, t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return loc.Lookup("timestamp--now", nil)
	case d < time.Hour:
		return loc.Lookup("timestamp--minutes", map[string]string{"count": strconv.Itoa(int(d.Minutes()))})
	case d < 24*time.Hour:
		return loc.Lookup("timestamp--hours", map[string]string{"count": strconv.Itoa(int(d.Hours()))})
	case d < 7*24*time.Hour:
		return loc.Lookup("timestamp--weekday-"+strconv.Itoa(int(t.Weekday())), nil)
	}

	vars := map[string]string{
		"month": loc.Lookup("timestamp--month-"+strconv.Itoa(int(t.Month())), nil),
		"day":   strconv.Itoa(t.Day()),
		"year":  strconv.Itoa(t.Year()),
	}
	if t.Year() == now.Year() {
		return loc.Lookup("timestamp--month-day", vars)
	}
	return loc.Lookup("timestamp--month-day-year", vars)
}
