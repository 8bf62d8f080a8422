package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/swot/pkg/schedule"
	"tableflip.dev/swot/pkg/store"
	"tableflip.dev/swot/pkg/syllabus"
	"tableflip.dev/swot/pkg/timeutil"
)

// fakePersistence keeps the document in memory and can be told to fail.
type fakePersistence struct {
	repo    *syllabus.Repository
	loadErr error
	saveErr error
	saves   int
}

func (f *fakePersistence) Load(ctx context.Context) (*syllabus.Repository, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.repo, nil
}

func (f *fakePersistence) Save(ctx context.Context, r *syllabus.Repository) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.repo = r
	f.saves++
	return nil
}

func (f *fakePersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func (f *fakePersistence) Tuning() schedule.Config {
	return schedule.DefaultConfig()
}

// Friday, January 5th 2024, mid-afternoon in Madrid.
var testNow = time.Date(2024, time.January, 5, 17, 0, 0, 0, timeutil.Zone)

func testService(f *fakePersistence) *Service {
	s := New(f)
	s.Now = func() time.Time { return testNow }
	return s
}

func seeded() *syllabus.Repository {
	return syllabus.Default(timeutil.Today(testNow))
}

func TestGradePersists(t *testing.T) {
	ctx := context.Background()
	f := &fakePersistence{repo: seeded()}
	s := testService(f)

	topic, err := s.Unlock(ctx, "Física", "Campo Eléctrico")
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !topic.Unlocked {
		t.Fatal("expected topic unlocked")
	}

	topic, err = s.Grade(ctx, "Física", "Campo Eléctrico", schedule.Easy)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if topic.Level != 1 {
		t.Errorf("level = %d, want 1", topic.Level)
	}

	// The mutation must have round-tripped through the store.
	got, err := f.repo.Find("Física", "Campo Eléctrico")
	if err != nil {
		t.Fatalf("find after grade: %v", err)
	}
	if got.Level != 1 {
		t.Errorf("persisted level = %d, want 1", got.Level)
	}
	if f.saves != 2 {
		t.Errorf("saves = %d, want 2", f.saves)
	}
}

func TestGradeUnknownTopic(t *testing.T) {
	s := testService(&fakePersistence{repo: seeded()})
	if _, err := s.Grade(context.Background(), "Física", "no such topic", schedule.Easy); !errors.Is(err, syllabus.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAgendaUsesClock(t *testing.T) {
	s := testService(&fakePersistence{repo: seeded()})
	view, err := s.Agenda(context.Background(), time.Time{}, false)
	if err != nil {
		t.Fatalf("agenda: %v", err)
	}
	// Friday 17:00 falls inside the general review block.
	if view.Block.Type != schedule.Mix {
		t.Errorf("block type = %q, want %q", view.Block.Type, schedule.Mix)
	}
	if view.Notice != "" {
		t.Errorf("unexpected notice %q", view.Notice)
	}
}

func TestAgendaExplicitInstant(t *testing.T) {
	s := testService(&fakePersistence{repo: seeded()})
	at := time.Date(2024, time.January, 6, 10, 0, 0, 0, timeutil.Zone) // Saturday mock exam
	view, err := s.Agenda(context.Background(), at, false)
	if err != nil {
		t.Fatalf("agenda: %v", err)
	}
	if view.Block.Type != schedule.Simulacro {
		t.Errorf("block type = %q, want %q", view.Block.Type, schedule.Simulacro)
	}
}

func TestSnapshotRecoversFromCorruption(t *testing.T) {
	f := &fakePersistence{loadErr: fmt.Errorf("%w: bad json", store.ErrCorrupt)}
	s := testService(f)
	r, notice, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if notice != RecoveredNotice {
		t.Errorf("notice = %q, want RecoveredNotice", notice)
	}
	if len(r.SubjectNames()) == 0 {
		t.Error("expected seeded subjects")
	}
}

func TestSnapshotSubstitutesWhenUnavailable(t *testing.T) {
	f := &fakePersistence{loadErr: fmt.Errorf("%w: disk gone", store.ErrUnavailable)}
	s := testService(f)
	r, notice, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if notice != UnavailableNotice {
		t.Errorf("notice = %q, want UnavailableNotice", notice)
	}
	if len(r.SubjectNames()) == 0 {
		t.Error("expected seeded subjects")
	}
}

func TestMutateAbortsWhenUnavailable(t *testing.T) {
	f := &fakePersistence{loadErr: fmt.Errorf("%w: disk gone", store.ErrUnavailable)}
	s := testService(f)
	if _, err := s.Unlock(context.Background(), "Física", "Campo Eléctrico"); !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if f.saves != 0 {
		t.Errorf("saves = %d, want 0", f.saves)
	}
}

func TestMutateRecoversFromCorruption(t *testing.T) {
	ctx := context.Background()
	f := &fakePersistence{loadErr: fmt.Errorf("%w: bad json", store.ErrCorrupt)}
	s := testService(f)

	if err := s.AddNote(ctx, "back to the seed"); err != nil {
		t.Fatalf("add note: %v", err)
	}
	f.loadErr = nil
	if len(f.repo.Notes) != 1 {
		t.Fatalf("notes = %d, want 1", len(f.repo.Notes))
	}
}

func TestRecordMistake(t *testing.T) {
	ctx := context.Background()
	f := &fakePersistence{repo: seeded()}
	s := testService(f)

	if _, err := s.Unlock(ctx, "Química", "Equilibrio Químico"); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if _, err := s.Grade(ctx, "Química", "Equilibrio Químico", schedule.Hard); err != nil {
		t.Fatalf("grade: %v", err)
	}
	topic, err := s.RecordMistake(ctx, "Química", "Equilibrio Químico", "Kc units wrong")
	if err != nil {
		t.Fatalf("record mistake: %v", err)
	}
	if topic.LastError != "Kc units wrong" {
		t.Errorf("last error = %q", topic.LastError)
	}
	if topic.PendingError {
		t.Error("pending capture flag should be cleared")
	}

	if _, err := s.RecordMistake(ctx, "Química", "Equilibrio Químico", ""); !errors.Is(err, syllabus.ErrValidation) {
		t.Fatalf("empty mistake err = %v, want ErrValidation", err)
	}
}

func TestSubjectAndTopicLifecycle(t *testing.T) {
	ctx := context.Background()
	f := &fakePersistence{repo: seeded()}
	s := testService(f)

	if err := s.AddSubject(ctx, "Dibujo Técnico", "skills"); err != nil {
		t.Fatalf("add subject: %v", err)
	}
	topic, err := s.AddTopic(ctx, "Dibujo Técnico", "Diédrico", "")
	if err != nil {
		t.Fatalf("add topic: %v", err)
	}
	if topic.Category != syllabus.CategorySkills {
		t.Errorf("category = %q, want inherited skills", topic.Category)
	}
	if err := s.DeleteTopic(ctx, "Dibujo Técnico", "Diédrico"); err != nil {
		t.Fatalf("delete topic: %v", err)
	}
	if err := s.DeleteSubject(ctx, "Dibujo Técnico"); err != nil {
		t.Fatalf("delete subject: %v", err)
	}
	if _, err := f.repo.Topics("Dibujo Técnico"); !errors.Is(err, syllabus.ErrNotFound) {
		t.Fatalf("subject still present: %v", err)
	}

	if err := s.AddSubject(ctx, "Dibujo Técnico", "drawing"); !errors.Is(err, syllabus.ErrValidation) {
		t.Fatalf("bad category err = %v, want ErrValidation", err)
	}
}

func TestToggleUrgent(t *testing.T) {
	ctx := context.Background()
	s := testService(&fakePersistence{repo: seeded()})

	topic, err := s.ToggleUrgent(ctx, "Inglés", "Writing: Opinion")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !topic.ExtraQueue {
		t.Fatal("expected urgent set")
	}
	topic, err = s.ToggleUrgent(ctx, "Inglés", "Writing: Opinion")
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if topic.ExtraQueue {
		t.Fatal("expected urgent cleared")
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	f := &fakePersistence{repo: seeded()}
	s := testService(f)

	if err := s.AddNote(ctx, "scratch"); err != nil {
		t.Fatalf("add note: %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(f.repo.Notes) != 0 {
		t.Errorf("notes survived reset: %d", len(f.repo.Notes))
	}
}

func TestSaveFailureStillReturnsState(t *testing.T) {
	ctx := context.Background()
	f := &fakePersistence{repo: seeded(), saveErr: fmt.Errorf("%w: read-only disk", store.ErrUnavailable)}
	s := testService(f)

	topic, err := s.Unlock(ctx, "Física", "Campo Eléctrico")
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if topic == nil || !topic.Unlocked {
		t.Fatal("expected the in-memory mutation to be returned alongside the error")
	}
}
