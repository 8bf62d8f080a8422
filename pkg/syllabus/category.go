// Package syllabus defines the study material model: topics grouped into
// subjects, plus the free-form notes list, as persisted by the store.
package syllabus

import (
	"fmt"
	"strings"
)

// Category describes which timetable blocks a topic belongs in. It is fixed
// at topic creation.
type Category string

const (
	// CategoryScience topics need deep-work blocks (problem solving).
	CategoryScience Category = "science"
	// CategoryMemory topics need recitation blocks (dates, authors).
	CategoryMemory Category = "memory"
	// CategorySkills topics are language/technique drills that also fit
	// into science blocks as gap fillers.
	CategorySkills Category = "skills"
)

// AllCategories returns the supported categories.
func AllCategories() []Category {
	return []Category{CategoryScience, CategoryMemory, CategorySkills}
}

// ParseCategory converts a string to a Category or returns an error for
// unknown values.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllCategories() {
		if candidate == c {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrValidation, raw)
}
