package syllabus

import (
	"fmt"
	"strings"

	"tableflip.dev/swot/pkg/timeutil"
)

// MaxLevel is the mastery ceiling. Levels live in [0, MaxLevel].
const MaxLevel = 5

// Topic is a single unit of study material with mastery tracking.
type Topic struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`

	// Unlocked marks the topic as covered in class and in rotation.
	Unlocked bool `json:"unlocked"`

	// Level is the mastery score, 0 (untouched) to MaxLevel.
	Level int `json:"level"`

	// NextReview is the date the topic comes due again.
	NextReview timeutil.Date `json:"next_review"`

	// LastError is the most recent recorded mistake; empty means none.
	LastError string `json:"last_error"`

	// ExtraQueue is the manual urgency override: due and top-ranked
	// regardless of NextReview.
	ExtraQueue bool `json:"extra_queue"`

	// PendingError is set after a failed review until the mistake text is
	// recorded. It only gates the capture prompt, never scheduling.
	PendingError bool `json:"pending_error_capture,omitempty"`
}

// NewTopic creates a locked topic due on the given date.
func NewTopic(name string, category Category, due timeutil.Date) *Topic {
	return &Topic{
		Name:       strings.TrimSpace(name),
		Category:   category,
		NextReview: due,
	}
}

// Due reports whether the topic should be offered on the given date.
func (t *Topic) Due(today timeutil.Date) bool {
	return t.ExtraQueue || !t.NextReview.After(today.Time)
}

// Unlock puts the topic into rotation. A future review date is pulled back to
// today so freshly covered material shows up immediately.
func (t *Topic) Unlock(today timeutil.Date) {
	t.Unlocked = true
	if t.NextReview.After(today.Time) {
		t.NextReview = today
	}
}

// Lock takes the topic back out of rotation.
func (t *Topic) Lock() {
	t.Unlocked = false
}

// Validate checks the topic invariants. Violations indicate a corrupt record,
// not a user mistake.
func (t *Topic) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: topic name required", ErrValidation)
	}
	if _, err := ParseCategory(string(t.Category)); err != nil {
		return err
	}
	if t.Level < 0 || t.Level > MaxLevel {
		return fmt.Errorf("%w: level %d outside [0,%d] for %q", ErrValidation, t.Level, MaxLevel, t.Name)
	}
	return nil
}
