package schedule

import (
	"errors"
	"testing"

	"tableflip.dev/swot/pkg/syllabus"
)

func reviewed(level int) *syllabus.Topic {
	t := syllabus.NewTopic("Integrales", syllabus.CategoryScience, today)
	t.Unlocked = true
	t.Level = level
	t.ExtraQueue = true
	return t
}

func TestApplyEasy(t *testing.T) {
	topic := reviewed(2)
	if err := Apply(topic, Easy, today, DefaultConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topic.Level != 3 {
		t.Fatalf("expected level 3, got %d", topic.Level)
	}
	// 3*5 + 3 = 18 days out.
	want := today.AddDays(18)
	if !topic.NextReview.Equal(want.Time) {
		t.Fatalf("expected next review %s, got %s", want, topic.NextReview)
	}
	if topic.ExtraQueue {
		t.Fatalf("grading must clear the urgency flag")
	}
}

func TestApplyEasyCapsLevel(t *testing.T) {
	topic := reviewed(syllabus.MaxLevel)
	if err := Apply(topic, Easy, today, DefaultConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topic.Level != syllabus.MaxLevel {
		t.Fatalf("expected level capped at %d, got %d", syllabus.MaxLevel, topic.Level)
	}
}

func TestApplyNormal(t *testing.T) {
	topic := reviewed(4)
	if err := Apply(topic, Normal, today, DefaultConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topic.Level != 4 {
		t.Fatalf("normal must not change level, got %d", topic.Level)
	}
	want := today.AddDays(3)
	if !topic.NextReview.Equal(want.Time) {
		t.Fatalf("expected next review %s, got %s", want, topic.NextReview)
	}
}

func TestApplyHard(t *testing.T) {
	topic := reviewed(5)
	if err := Apply(topic, Hard, today, DefaultConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topic.Level != 1 {
		t.Fatalf("hard must reset level to 1, got %d", topic.Level)
	}
	want := today.AddDays(1)
	if !topic.NextReview.Equal(want.Time) {
		t.Fatalf("expected review tomorrow, got %s", topic.NextReview)
	}
	if !topic.PendingError {
		t.Fatalf("hard must open the error-capture state")
	}

	// The capture is a decoupled follow-up: recording the text stores it
	// and closes the state without touching the reschedule.
	RecordError(topic, "sign error")
	if topic.LastError != "sign error" {
		t.Fatalf("expected stored error text, got %q", topic.LastError)
	}
	if topic.PendingError {
		t.Fatalf("capture state should be closed")
	}
	if topic.Level != 1 || !topic.NextReview.Equal(want.Time) {
		t.Fatalf("recording the error must not reschedule again")
	}
}

func TestApplyNeverEscapesBounds(t *testing.T) {
	for _, o := range []Outcome{Easy, Normal, Hard} {
		for level := 0; level <= syllabus.MaxLevel; level++ {
			topic := reviewed(level)
			if err := Apply(topic, o, today, DefaultConfig()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if topic.Level < 0 || topic.Level > syllabus.MaxLevel {
				t.Fatalf("%s at level %d escaped bounds: %d", o, level, topic.Level)
			}
			if topic.NextReview.Before(today.AddDays(1).Time) {
				t.Fatalf("%s at level %d scheduled before tomorrow: %s", o, level, topic.NextReview)
			}
		}
	}
}

func TestApplyRejectsInvalidOutcome(t *testing.T) {
	topic := reviewed(2)
	if err := Apply(topic, Outcome(0), today, DefaultConfig()); !errors.Is(err, ErrInvalidOutcome) {
		t.Fatalf("expected ErrInvalidOutcome, got %v", err)
	}
	if topic.Level != 2 || !topic.ExtraQueue {
		t.Fatalf("rejected outcome must not mutate the topic")
	}
}

func TestParseOutcome(t *testing.T) {
	cases := map[string]Outcome{
		"easy": Easy, "E": Easy,
		"normal": Normal, "ok": Normal,
		"hard": Hard, "fail": Hard, " h ": Hard,
	}
	for raw, want := range cases {
		got, err := ParseOutcome(raw)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", raw, want, got)
		}
	}
	if _, err := ParseOutcome("meh"); !errors.Is(err, ErrInvalidOutcome) {
		t.Fatalf("expected ErrInvalidOutcome for junk token")
	}
}

func TestTuningIsConfiguration(t *testing.T) {
	cfg := Config{EasyStep: 7, EasyBase: 1, NormalDelay: 4, MinTaskMinutes: 30, MaxTasksFallback: 1, FallbackTaskMinutes: 20}
	topic := reviewed(0)
	if err := Apply(topic, Easy, today, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := today.AddDays(1*7 + 1)
	if !topic.NextReview.Equal(want.Time) {
		t.Fatalf("expected next review %s, got %s", want, topic.NextReview)
	}
}
