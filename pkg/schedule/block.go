package schedule

import (
	"time"

	"tableflip.dev/swot/pkg/syllabus"
	"tableflip.dev/swot/pkg/timeutil"
)

// BlockType names one kind of timetabled activity.
type BlockType string

const (
	Science   BlockType = "science"
	Memory    BlockType = "memory"
	Mix       BlockType = "mix"
	Gym       BlockType = "gym"
	Break     BlockType = "break"
	Sleep     BlockType = "sleep"
	Free      BlockType = "free"
	Simulacro BlockType = "simulacro"
	Review    BlockType = "review"
)

// Rest reports whether this is downtime rather than study time.
func (b BlockType) Rest() bool {
	switch b {
	case Gym, Break, Free, Sleep:
		return true
	}
	return false
}

// Matches reports whether a topic of the given category belongs in this kind
// of block. Skills topics double as gap fillers inside science blocks.
func (b BlockType) Matches(c syllabus.Category) bool {
	switch b {
	case Simulacro, Mix:
		return true
	case Science:
		return c == syllabus.CategoryScience || c == syllabus.CategorySkills
	case Memory:
		return c == syllabus.CategoryMemory
	}
	return false
}

// Block describes what activity is happening right now. It is ephemeral:
// recomputed from the wall clock on every evaluation, never persisted.
type Block struct {
	Type    BlockType
	Label   string
	Minutes int
	// End is when the block finishes; zero for open-ended or untimed
	// blocks. Display-only (countdowns), never a scheduling input.
	End time.Time
}

// span is one half-open [From, To) slot of the weekly timetable, in
// fractional hours.
type span struct {
	From, To float64
	Type     BlockType
	Label    string
	Minutes  int
}

// week is the fixed institution timetable. Monday and Wednesday are the
// late-exit days, Tuesday and Thursday the early-exit days; Friday is a
// buffer, Saturday the mock exam, Sunday evening the weekly review.
var week = map[time.Weekday][]span{
	time.Monday: {
		{16.0, 17.5, Science, "Deep Science I", 90},
		{17.5, 19.0, Gym, "Gym / Reset", 90},
		{19.0, 19.5, Break, "Shower & Snack", 30},
		{19.5, 21.0, Science, "Deep Science II", 90},
		{21.0, 21.5, Break, "Dinner (no screens)", 30},
		{21.5, 22.75, Memory, "Memory Drill", 75},
		{23.0, 24.0, Sleep, "Sleep", 0},
	},
	time.Tuesday: {
		{15.5, 17.0, Science, "Deep Science I", 90},
		{17.0, 18.5, Gym, "Gym", 90},
		{19.0, 20.5, Science, "Deep Science II", 90},
		{21.5, 22.75, Memory, "Memory Drill", 75},
		{23.0, 24.0, Sleep, "Sleep", 0},
	},
	time.Friday: {
		{16.0, 20.0, Mix, "General Review / Buffer", 240},
	},
	time.Saturday: {
		{9.5, 13.5, Simulacro, "Full Mock Exam", 240},
		{14.0, 24.0, Free, "Saturday Off", 0},
	},
	time.Sunday: {
		{18.0, 24.0, Review, "Weekly Planning & Error Log", 60},
	},
}

func init() {
	week[time.Wednesday] = week[time.Monday]
	week[time.Thursday] = week[time.Tuesday]
}

// idle is the default when no interval matches. Not an error: unscheduled
// moments are simply free time.
var idle = Block{Type: Free, Label: "Idle / Buffer"}

// Resolve maps an instant to the active block. The instant is converted to
// the institution zone first; matching happens on the weekday and the
// fractional hour (minutes contribute minutes/60). Never fails.
func Resolve(now time.Time) Block {
	now = now.In(timeutil.Zone)
	h := timeutil.ClockHours(now)
	for _, s := range week[now.Weekday()] {
		if h < s.From || h >= s.To {
			continue
		}
		b := Block{Type: s.Type, Label: s.Label, Minutes: s.Minutes}
		if s.Minutes > 0 {
			midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timeutil.Zone)
			b.End = midnight.Add(time.Duration(s.To * float64(time.Hour)))
		}
		return b
	}
	return idle
}
