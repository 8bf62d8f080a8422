// Package timeutil holds the calendar primitives for the planner: the fixed
// institution time zone and a civil date type that serialises as ISO 8601.
package timeutil

import (
	"time"
	_ "time/tzdata"
)

// Zone is the institution's local zone. Every scheduling decision is made in
// this zone regardless of the host clock; callers convert at the boundary.
var Zone = mustZone("Europe/Madrid")

func mustZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// tzdata is linked in, so this only trips on a bad name.
		panic(err)
	}
	return loc
}
