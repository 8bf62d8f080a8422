package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const stampLayout = "2006-01-02 15:04"

// ParseStamp parses a user-supplied "YYYY-MM-DD HH:MM" stamp in Zone. A bare
// date is read as midnight. Used by --at style flags to pin the clock.
func ParseStamp(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.ParseInLocation(stampLayout, v, Zone); err == nil {
		return t, nil
	}
	if d, err := ParseDate(v); err == nil {
		return d.Time, nil
	}
	return time.Time{}, fmt.Errorf(`invalid time %q, want "YYYY-MM-DD HH:MM"`, v)
}

// ClockHours reduces an instant to fractional hours in Zone, minutes counting
// as minutes/60. Seconds do not participate in timetable matching.
func ClockHours(t time.Time) float64 {
	t = t.In(Zone)
	return float64(t.Hour()) + float64(t.Minute())/60.0
}
