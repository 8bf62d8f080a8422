package timeutil

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// LayoutISO is the civil date layout used at every persistence boundary.
const LayoutISO = "2006-01-02"

// Date is a civil date pinned to midnight in Zone. It exists so that due-date
// math is real date arithmetic internally while the stored form stays a plain
// ISO 8601 string.
type Date struct {
	time.Time
}

// NewDate returns the civil date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, Zone)}
}

// DateOf truncates an instant to the civil date it falls on in Zone.
func DateOf(t time.Time) Date {
	t = t.In(Zone)
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today is the civil date of the given wall-clock instant. Callers inject the
// clock so scheduling stays reproducible under test.
func Today(now time.Time) Date {
	return DateOf(now)
}

// ParseDate parses an ISO 8601 date string.
func ParseDate(v string) (Date, error) {
	t, err := time.ParseInLocation(LayoutISO, v, Zone)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// AddDays returns the date n calendar days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year(), d.Month(), d.Day()+n)
}

// DaysSince returns d - other in whole calendar days. Rounding absorbs the
// odd-length days introduced by DST transitions.
func (d Date) DaysSince(other Date) int {
	return int(math.Round(d.Sub(other.Time).Hours() / 24))
}

func (d Date) String() string {
	return d.Format(LayoutISO)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", d.Format(LayoutISO))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(v)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}
