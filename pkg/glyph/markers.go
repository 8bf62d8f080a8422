package glyph

import (
	"fmt"
	"strings"

	"tableflip.dev/swot/pkg/syllabus"
)

// Marker is a terminal symbol attached to a topic line.
type Marker struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	dimCode       = 2
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func Dim(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, dimCode, in, escape, resetCode)
}

// DefaultMarkers is the legend printed by help surfaces.
func DefaultMarkers() []Marker {
	return []Marker{
		{Key: "!", Symbol: "🔥", Meaning: "urgent (manual study-today override)"},
		{Key: "f", Symbol: "🐸", Meaning: "frog (most overdue task of the block)"},
		{Key: "e", Symbol: "📝", Meaning: "mistake recorded in the error log"},
		{Key: "l", Symbol: "🔒", Meaning: "locked (not yet covered in class)"},
	}
}

const (
	Urgent = "🔥"
	Frog   = "🐸"
	Drill  = "📝"
	Locked = "🔒"
)

const levelFull, levelEmpty = "▰", "▱"

// LevelBar renders a mastery level as a fixed-width bar, e.g. "▰▰▰▱▱".
func LevelBar(level int) string {
	if level < 0 {
		level = 0
	}
	if level > syllabus.MaxLevel {
		level = syllabus.MaxLevel
	}
	return strings.Repeat(levelFull, level) + strings.Repeat(levelEmpty, syllabus.MaxLevel-level)
}

// TopicMarkers returns the symbols that apply to a topic, in display order.
func TopicMarkers(t *syllabus.Topic) string {
	var b strings.Builder
	if !t.Unlocked {
		b.WriteString(Locked)
	}
	if t.ExtraQueue {
		b.WriteString(Urgent)
	}
	if t.LastError != "" {
		b.WriteString(Drill)
	}
	return b.String()
}
