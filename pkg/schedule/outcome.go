package schedule

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/swot/pkg/syllabus"
	"tableflip.dev/swot/pkg/timeutil"
)

// ErrInvalidOutcome rejects outcome tokens outside easy/normal/hard. This is
// a caller bug, not a runtime condition: check with errors.Is at the boundary.
var ErrInvalidOutcome = errors.New("schedule: invalid outcome")

// Outcome is the user's self-graded result for a studied topic.
type Outcome int

const (
	Easy Outcome = iota + 1 // Recalled effortlessly.
	Normal                  // Recalled with some effort.
	Hard                    // Failed; needs the error notebook.
)

var outcomeNames = [...]string{Easy: "easy", Normal: "normal", Hard: "hard"}

// IsValid reports whether o is one of the three grades.
func (o Outcome) IsValid() bool {
	return o >= Easy && o <= Hard
}

func (o Outcome) String() string {
	if o.IsValid() {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// ParseOutcome converts a grade token to an Outcome.
func ParseOutcome(raw string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy", "e":
		return Easy, nil
	case "normal", "ok", "n":
		return Normal, nil
	case "hard", "fail", "h":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOutcome, raw)
}

// Apply records a review outcome on a topic, rescheduling it:
//
//	easy:   level rises one step (capped), next review in level*EasyStep +
//	        EasyBase days — the better you know it, the longer it sleeps.
//	normal: level unchanged, next review in NormalDelay days.
//	hard:   level hard-resets to 1, review tomorrow, and the topic enters
//	        the awaiting-error-text state for the notebook.
//
// Every grade clears the manual urgency flag: the topic was just studied.
// The error-text capture after a hard grade is decoupled; rescheduling never
// waits for it (see RecordError).
func Apply(t *syllabus.Topic, o Outcome, today timeutil.Date, cfg Config) error {
	switch o {
	case Easy:
		if t.Level < syllabus.MaxLevel {
			t.Level++
		}
		t.NextReview = today.AddDays(t.Level*cfg.EasyStep + cfg.EasyBase)
	case Normal:
		t.NextReview = today.AddDays(cfg.NormalDelay)
	case Hard:
		t.Level = 1
		t.NextReview = today.AddDays(1)
		t.PendingError = true
	default:
		return fmt.Errorf("%w: %d", ErrInvalidOutcome, int(o))
	}
	t.ExtraQueue = false
	return nil
}

// RecordError stores the mistake text gathered after a hard outcome and
// closes the capture state. It touches nothing else: the reschedule already
// happened when the grade was applied.
func RecordError(t *syllabus.Topic, text string) {
	t.LastError = strings.TrimSpace(text)
	t.PendingError = false
}
