package schedule

import (
	"fmt"
	"testing"
	"time"

	"tableflip.dev/swot/pkg/syllabus"
	"tableflip.dev/swot/pkg/timeutil"
)

var today = timeutil.NewDate(2024, time.January, 5)

func topic(name string, cat syllabus.Category, due timeutil.Date, level int) *syllabus.Topic {
	t := syllabus.NewTopic(name, cat, due)
	t.Unlocked = true
	t.Level = level
	return t
}

func repoOf(subjects map[string][]*syllabus.Topic) *syllabus.Repository {
	r := syllabus.New()
	r.Subjects = subjects
	return r
}

func TestSelectEligibility(t *testing.T) {
	locked := topic("locked", syllabus.CategoryScience, today.AddDays(-2), 0)
	locked.Unlocked = false
	future := topic("future", syllabus.CategoryScience, today.AddDays(2), 0)
	wrongCat := topic("dates", syllabus.CategoryMemory, today.AddDays(-2), 0)
	due := topic("due", syllabus.CategoryScience, today.AddDays(-4), 0)
	skills := topic("essay", syllabus.CategorySkills, today, 0)

	r := repoOf(map[string][]*syllabus.Topic{
		"A": {locked, future, wrongCat, due},
		"B": {skills},
	})
	sel := Select(Block{Type: Science, Minutes: 90}, r, false, today, DefaultConfig())
	if len(sel.Ranked) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(sel.Ranked))
	}
	// Scenario: due 4 days ago means 4 days overdue.
	if sel.Ranked[0].Topic.Name != "due" || sel.Ranked[0].DaysOverdue != 4 {
		t.Fatalf("expected 'due' first with 4 days overdue, got %q/%d",
			sel.Ranked[0].Topic.Name, sel.Ranked[0].DaysOverdue)
	}
	// Skills topics fill science blocks.
	if sel.Ranked[1].Topic.Name != "essay" {
		t.Fatalf("expected skills topic eligible in science block, got %q", sel.Ranked[1].Topic.Name)
	}
}

func TestSelectMemoryBlockIsStrict(t *testing.T) {
	r := repoOf(map[string][]*syllabus.Topic{
		"A": {
			topic("science", syllabus.CategoryScience, today, 0),
			topic("skills", syllabus.CategorySkills, today, 0),
			topic("memory", syllabus.CategoryMemory, today, 0),
		},
	})
	sel := Select(Block{Type: Memory, Minutes: 75}, r, false, today, DefaultConfig())
	if len(sel.Ranked) != 1 || sel.Ranked[0].Topic.Name != "memory" {
		t.Fatalf("memory block should only take memory topics, got %+v", sel.Ranked)
	}
}

func TestSelectRestShortCircuit(t *testing.T) {
	r := repoOf(map[string][]*syllabus.Topic{
		"A": {topic("due", syllabus.CategoryScience, today.AddDays(-1), 0)},
	})
	sel := Select(Block{Type: Gym, Minutes: 90}, r, false, today, DefaultConfig())
	if !sel.Resting() {
		t.Fatalf("expected resting selection")
	}
	if sel.Ranked != nil || sel.Tasks != nil {
		t.Fatalf("rest blocks must not compute tasks")
	}
}

func TestSelectForceStudyRemapsToMix(t *testing.T) {
	r := repoOf(map[string][]*syllabus.Topic{
		"A": {
			topic("science", syllabus.CategoryScience, today, 0),
			topic("memory", syllabus.CategoryMemory, today, 0),
		},
	})
	sel := Select(Block{Type: Gym, Minutes: 90}, r, true, today, DefaultConfig())
	if sel.Effective != Mix {
		t.Fatalf("expected effective mix, got %s", sel.Effective)
	}
	if len(sel.Ranked) != 2 {
		t.Fatalf("force study should ignore category, got %d candidates", len(sel.Ranked))
	}
	// Force has no bearing on study blocks.
	sel = Select(Block{Type: Memory, Minutes: 75}, r, true, today, DefaultConfig())
	if sel.Effective != Memory {
		t.Fatalf("force should not remap study blocks, got %s", sel.Effective)
	}
}

func TestSelectReviewShortCircuit(t *testing.T) {
	r := repoOf(map[string][]*syllabus.Topic{
		"A": {topic("due", syllabus.CategoryScience, today.AddDays(-1), 0)},
	})
	sel := Select(Block{Type: Review, Minutes: 60}, r, false, today, DefaultConfig())
	if !sel.Planning() {
		t.Fatalf("expected planning selection")
	}
	if len(sel.Ranked) != 0 {
		t.Fatalf("review blocks must not compute tasks")
	}
}

func TestSelectRanking(t *testing.T) {
	urgent := topic("urgent", syllabus.CategoryScience, today.AddDays(3), 4)
	urgent.ExtraQueue = true
	overdue := topic("overdue", syllabus.CategoryScience, today.AddDays(-6), 3)
	hardFrog := topic("frog", syllabus.CategoryScience, today.AddDays(-2), 0)
	easier := topic("easier", syllabus.CategoryScience, today.AddDays(-2), 4)

	r := repoOf(map[string][]*syllabus.Topic{
		"A": {easier, hardFrog, overdue, urgent},
	})
	sel := Select(Block{Type: Science, Minutes: 240}, r, false, today, DefaultConfig())
	want := []string{"urgent", "overdue", "frog", "easier"}
	for i, name := range want {
		if sel.Ranked[i].Topic.Name != name {
			t.Fatalf("rank %d: expected %q, got %q", i, name, sel.Ranked[i].Topic.Name)
		}
	}
	// Urgency-only candidates may carry a negative overdue count.
	if sel.Ranked[0].DaysOverdue != -3 {
		t.Fatalf("expected -3 days overdue for future urgent topic, got %d", sel.Ranked[0].DaysOverdue)
	}
}

func TestSelectRankingStable(t *testing.T) {
	// Identical sort keys keep encounter order: subject name, then index.
	r := repoOf(map[string][]*syllabus.Topic{
		"B": {topic("b1", syllabus.CategoryScience, today, 2), topic("b2", syllabus.CategoryScience, today, 2)},
		"A": {topic("a1", syllabus.CategoryScience, today, 2)},
	})
	sel := Select(Block{Type: Science, Minutes: 240}, r, false, today, DefaultConfig())
	want := []string{"a1", "b1", "b2"}
	for i, name := range want {
		if sel.Ranked[i].Topic.Name != name {
			t.Fatalf("rank %d: expected %q, got %q", i, name, sel.Ranked[i].Topic.Name)
		}
	}
}

func TestSelectIdempotent(t *testing.T) {
	r := repoOf(map[string][]*syllabus.Topic{
		"A": {
			topic("x", syllabus.CategoryScience, today.AddDays(-1), 1),
			topic("y", syllabus.CategoryScience, today.AddDays(-3), 2),
		},
	})
	b := Block{Type: Science, Minutes: 90}
	first := Select(b, r, false, today, DefaultConfig())
	second := Select(b, r, false, today, DefaultConfig())
	if len(first.Ranked) != len(second.Ranked) {
		t.Fatalf("selection changed between runs")
	}
	for i := range first.Ranked {
		if first.Ranked[i].Topic != second.Ranked[i].Topic {
			t.Fatalf("rank %d differs between runs", i)
		}
	}
}

func TestSelectTimeBoxing(t *testing.T) {
	topics := make([]*syllabus.Topic, 0, 10)
	for i := 0; i < 10; i++ {
		topics = append(topics, topic(fmt.Sprintf("t%02d", i), syllabus.CategoryScience, today, 0))
	}
	r := repoOf(map[string][]*syllabus.Topic{"A": topics})

	cfg := DefaultConfig()
	cfg.MinTaskMinutes = 40
	sel := Select(Block{Type: Science, Minutes: 90}, r, false, today, cfg)
	if len(sel.Tasks) != 2 {
		t.Fatalf("expected 2 selected tasks, got %d", len(sel.Tasks))
	}
	if sel.Hidden != 8 {
		t.Fatalf("expected 8 hidden, got %d", sel.Hidden)
	}
	if sel.MinutesPerTask != 45 {
		t.Fatalf("expected 45 minutes per task, got %d", sel.MinutesPerTask)
	}
	if len(sel.Tasks)+sel.Hidden != len(sel.Ranked) {
		t.Fatalf("selected+hidden != ranked")
	}
}

func TestSelectShortBlockStillFitsOne(t *testing.T) {
	r := repoOf(map[string][]*syllabus.Topic{
		"A": {topic("x", syllabus.CategoryScience, today, 0)},
	})
	cfg := DefaultConfig()
	cfg.MinTaskMinutes = 40
	sel := Select(Block{Type: Science, Minutes: 30}, r, false, today, cfg)
	if len(sel.Tasks) != 1 {
		t.Fatalf("a timed block always fits at least one task, got %d", len(sel.Tasks))
	}
}

func TestSelectUntimedBlockFallbacks(t *testing.T) {
	topics := make([]*syllabus.Topic, 0, 8)
	for i := 0; i < 8; i++ {
		topics = append(topics, topic(fmt.Sprintf("t%02d", i), syllabus.CategoryScience, today, 0))
	}
	r := repoOf(map[string][]*syllabus.Topic{"A": topics})
	cfg := DefaultConfig()
	sel := Select(Block{Type: Free, Minutes: 0}, r, true, today, cfg)
	if len(sel.Tasks) != cfg.MaxTasksFallback {
		t.Fatalf("expected fallback ceiling %d, got %d", cfg.MaxTasksFallback, len(sel.Tasks))
	}
	if sel.MinutesPerTask != cfg.FallbackTaskMinutes {
		t.Fatalf("expected fallback minutes %d, got %d", cfg.FallbackTaskMinutes, sel.MinutesPerTask)
	}
}

func TestSelectEmptyRepository(t *testing.T) {
	sel := Select(Block{Type: Science, Minutes: 90}, syllabus.New(), false, today, DefaultConfig())
	if len(sel.Ranked) != 0 || len(sel.Tasks) != 0 || sel.Hidden != 0 || sel.MinutesPerTask != 0 {
		t.Fatalf("expected empty selection, got %+v", sel)
	}
}
