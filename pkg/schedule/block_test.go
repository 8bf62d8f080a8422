package schedule

import (
	"testing"
	"time"

	"tableflip.dev/swot/pkg/timeutil"
)

// madrid builds an instant in the timetable zone.
// 2024-01-01 is a Monday.
func madrid(day, hour, min int) time.Time {
	return time.Date(2024, time.January, day, hour, min, 0, 0, timeutil.Zone)
}

func TestResolveMondayScienceBlock(t *testing.T) {
	b := Resolve(madrid(1, 16, 30))
	if b.Type != Science {
		t.Fatalf("expected science, got %s", b.Type)
	}
	if b.Minutes != 90 {
		t.Fatalf("expected 90 minutes, got %d", b.Minutes)
	}
	if b.End.IsZero() {
		t.Fatalf("expected a block end time")
	}
	if b.End.Hour() != 17 || b.End.Minute() != 30 {
		t.Fatalf("expected end 17:30, got %s", b.End.Format("15:04"))
	}
}

func TestResolveBoundaries(t *testing.T) {
	// Lower bound inclusive: 16:00 Monday starts the science block.
	if b := Resolve(madrid(1, 16, 0)); b.Type != Science {
		t.Fatalf("expected science at lower bound, got %s", b.Type)
	}
	// Upper bound exclusive: 17:30 Monday already belongs to the gym.
	if b := Resolve(madrid(1, 17, 30)); b.Type != Gym {
		t.Fatalf("expected gym at upper bound, got %s", b.Type)
	}
}

func TestResolveIdleDefault(t *testing.T) {
	// The Monday 22:45-23:00 gap is unscheduled.
	b := Resolve(madrid(1, 22, 50))
	if b.Type != Free {
		t.Fatalf("expected free for an unscheduled gap, got %s", b.Type)
	}
	if b.Minutes != 0 {
		t.Fatalf("expected no duration, got %d", b.Minutes)
	}
	if !b.End.IsZero() {
		t.Fatalf("expected no end time for idle")
	}
}

func TestResolveWholeWeekShape(t *testing.T) {
	cases := []struct {
		at   time.Time
		typ  BlockType
		mins int
	}{
		{madrid(1, 21, 45), Memory, 75},     // Monday memory drill
		{madrid(2, 15, 45), Science, 90},    // Tuesday early-exit science
		{madrid(2, 23, 30), Sleep, 0},       // Tuesday night
		{madrid(3, 16, 30), Science, 90},    // Wednesday mirrors Monday
		{madrid(4, 19, 30), Science, 90},    // Thursday mirrors Tuesday
		{madrid(5, 18, 0), Mix, 240},        // Friday buffer
		{madrid(6, 10, 0), Simulacro, 240},  // Saturday mock exam
		{madrid(6, 16, 0), Free, 0},         // Saturday afternoon off
		{madrid(7, 19, 0), Review, 60},      // Sunday review
		{madrid(7, 9, 0), Free, 0},          // Sunday morning unscheduled
	}
	for _, tc := range cases {
		b := Resolve(tc.at)
		if b.Type != tc.typ || b.Minutes != tc.mins {
			t.Fatalf("at %s: expected %s/%d, got %s/%d",
				tc.at.Format("Mon 15:04"), tc.typ, tc.mins, b.Type, b.Minutes)
		}
	}
}

func TestResolveConvertsHostZone(t *testing.T) {
	// Monday 15:30 UTC is Monday 16:30 in Madrid during winter.
	utc := time.Date(2024, time.January, 1, 15, 30, 0, 0, time.UTC)
	b := Resolve(utc)
	if b.Type != Science {
		t.Fatalf("expected science after zone conversion, got %s", b.Type)
	}
}

func TestResolveIsPure(t *testing.T) {
	at := madrid(1, 16, 30)
	first := Resolve(at)
	second := Resolve(at)
	if first != second {
		t.Fatalf("resolve not reproducible: %+v != %+v", first, second)
	}
}

func TestBlockTypeRest(t *testing.T) {
	for _, typ := range []BlockType{Gym, Break, Free, Sleep} {
		if !typ.Rest() {
			t.Fatalf("%s should be rest", typ)
		}
	}
	for _, typ := range []BlockType{Science, Memory, Mix, Simulacro, Review} {
		if typ.Rest() {
			t.Fatalf("%s should not be rest", typ)
		}
	}
}
