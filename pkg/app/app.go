// Package app provides the high-level planner operations shared by the CLI
// runners and the interactive UIs. Every operation is a discrete
// load-mutate-save cycle against the full document.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/swot/pkg/schedule"
	"tableflip.dev/swot/pkg/store"
	"tableflip.dev/swot/pkg/syllabus"
	"tableflip.dev/swot/pkg/timeutil"
)

// RecoveredNotice is surfaced whenever stored data had to be abandoned and
// the seeded syllabus took its place. Data loss is accepted but never silent.
const RecoveredNotice = "stored data could not be read; continuing from the default syllabus"

// UnavailableNotice is surfaced when storage cannot be reached for a
// read-only view; the view falls back to the seeded syllabus for this
// interaction and the next one retries.
const UnavailableNotice = "storage unavailable; showing the default syllabus for now"

// Service wraps persistence and the scheduling engine so UIs and CLIs share
// one implementation of every operation.
type Service struct {
	Persistence store.Persistence
	Tuning      schedule.Config

	// Now is the wall clock, injectable for tests.
	Now func() time.Time
}

// New builds a Service over the given persistence, using its tuning.
func New(p store.Persistence) *Service {
	return &Service{Persistence: p, Tuning: p.Tuning(), Now: time.Now}
}

func (s *Service) clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) today() timeutil.Date {
	return timeutil.Today(s.clock())
}

// Snapshot loads the current document for display. It never fails: a corrupt
// or unreachable store substitutes the seeded default and the returned notice
// says so.
func (s *Service) Snapshot(ctx context.Context) (*syllabus.Repository, string, error) {
	if s.Persistence == nil {
		return nil, "", errors.New("app: no persistence configured")
	}
	r, err := s.Persistence.Load(ctx)
	switch {
	case err == nil:
		return r, "", nil
	case errors.Is(err, store.ErrCorrupt):
		return syllabus.Default(s.today()), RecoveredNotice, nil
	default:
		return syllabus.Default(s.today()), UnavailableNotice, nil
	}
}

// mutate runs fn against the loaded document and saves the result. A corrupt
// document is replaced by the seed before fn runs (surfaced via the notice);
// an unreachable store aborts with no mutation. When fn succeeded but the
// save failed, the mutated repository is still returned so interactive
// callers can keep their in-memory state.
func (s *Service) mutate(ctx context.Context, fn func(*syllabus.Repository) error) (*syllabus.Repository, string, error) {
	if s.Persistence == nil {
		return nil, "", errors.New("app: no persistence configured")
	}
	notice := ""
	r, err := s.Persistence.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return nil, "", err
		}
		r = syllabus.Default(s.today())
		notice = RecoveredNotice
	}
	if err := fn(r); err != nil {
		return nil, notice, err
	}
	if err := s.Persistence.Save(ctx, r); err != nil {
		return r, notice, err
	}
	return r, notice, nil
}

// AgendaView is everything the agenda surfaces need: the resolved block, the
// computed selection and any recovery notice.
type AgendaView struct {
	Block     schedule.Block
	Selection schedule.Selection
	Notice    string
}

// Agenda resolves the block for the given instant (zero means now) and
// selects the tasks that fit it.
func (s *Service) Agenda(ctx context.Context, at time.Time, force bool) (AgendaView, error) {
	if at.IsZero() {
		at = s.clock()
	}
	r, notice, err := s.Snapshot(ctx)
	if err != nil {
		return AgendaView{}, err
	}
	block := schedule.Resolve(at)
	sel := schedule.Select(block, r, force, timeutil.Today(at), s.Tuning)
	return AgendaView{Block: block, Selection: sel, Notice: notice}, nil
}

// Grade applies a review outcome to a topic and persists the reschedule.
func (s *Service) Grade(ctx context.Context, subject, topic string, o schedule.Outcome) (*syllabus.Topic, error) {
	var graded *syllabus.Topic
	_, _, err := s.mutate(ctx, func(r *syllabus.Repository) error {
		t, err := r.Find(subject, topic)
		if err != nil {
			return err
		}
		if err := schedule.Apply(t, o, s.today(), s.Tuning); err != nil {
			return err
		}
		graded = t
		return nil
	})
	return graded, err
}

// RecordMistake stores the error text a hard grade asked for.
func (s *Service) RecordMistake(ctx context.Context, subject, topic, text string) (*syllabus.Topic, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: mistake text required", syllabus.ErrValidation)
	}
	var updated *syllabus.Topic
	_, _, err := s.mutate(ctx, func(r *syllabus.Repository) error {
		t, err := r.Find(subject, topic)
		if err != nil {
			return err
		}
		schedule.RecordError(t, text)
		updated = t
		return nil
	})
	return updated, err
}

// ClearError wipes a topic's notebook entry once the mistake is learned.
func (s *Service) ClearError(ctx context.Context, subject, topic string) error {
	_, _, err := s.mutate(ctx, func(r *syllabus.Repository) error {
		t, err := r.Find(subject, topic)
		if err != nil {
			return err
		}
		t.LastError = ""
		return nil
	})
	return err
}

// Unlock puts a topic into rotation (covered in class).
func (s *Service) Unlock(ctx context.Context, subject, topic string) (*syllabus.Topic, error) {
	var updated *syllabus.Topic
	_, _, err := s.mutate(ctx, func(r *syllabus.Repository) error {
		t, err := r.Find(subject, topic)
		if err != nil {
			return err
		}
		t.Unlock(s.today())
		updated = t
		return nil
	})
	return updated, err
}

// Lock takes a topic back out of rotation.
func (s *Service) Lock(ctx context.Context, subject, topic string) (*syllabus.Topic, error) {
	var updated *syllabus.Topic
	_, _, err := s.mutate(ctx, func(r *syllabus.Repository) error {
		t, err := r.Find(subject, topic)
		if err != nil {
			return err
		}
		t.Lock()
		updated = t
		return nil
	})
	return updated, err
}

// ToggleUrgent flips the manual study-today override on a topic.
func (s *Service) ToggleUrgent(ctx context.Context, subject, topic string) (*syllabus.Topic, error) {
	var updated *syllabus.Topic
	_, _, err := s.mutate(ctx, func(r *syllabus.Repository) error {
		t, err := r.Find(subject, topic)
		if err != nil {
			return err
		}
		t.ExtraQueue = !t.ExtraQueue
		updated = t
		return nil
	})
	return updated, err
}

// AddSubject creates a subject with its declared category.
func (s *Service) AddSubject(ctx context.Context, name, category string) error {
	cat, err := syllabus.ParseCategory(category)
	if err != nil {
		return err
	}
	_, _, err = s.mutate(ctx, func(r *syllabus.Repository) error {
		return r.AddSubject(name, cat, s.today())
	})
	return err
}

// AddTopic appends a topic to a subject; empty category inherits the subject
// default.
func (s *Service) AddTopic(ctx context.Context, subject, name, category string) (*syllabus.Topic, error) {
	var cat syllabus.Category
	if category != "" {
		parsed, err := syllabus.ParseCategory(category)
		if err != nil {
			return nil, err
		}
		cat = parsed
	}
	var added *syllabus.Topic
	_, _, err := s.mutate(ctx, func(r *syllabus.Repository) error {
		t, err := r.AddTopic(subject, name, cat, s.today())
		if err != nil {
			return err
		}
		added = t
		return nil
	})
	return added, err
}

// DeleteSubject removes a subject and everything in it. Irreversible.
func (s *Service) DeleteSubject(ctx context.Context, name string) error {
	_, _, err := s.mutate(ctx, func(r *syllabus.Repository) error {
		return r.DeleteSubject(name)
	})
	return err
}

// DeleteTopic removes a single topic. Irreversible.
func (s *Service) DeleteTopic(ctx context.Context, subject, name string) error {
	_, _, err := s.mutate(ctx, func(r *syllabus.Repository) error {
		return r.DeleteTopic(subject, name)
	})
	return err
}

// AddNote appends a dated free-form note.
func (s *Service) AddNote(ctx context.Context, text string) error {
	_, _, err := s.mutate(ctx, func(r *syllabus.Repository) error {
		return r.AddNote(text, s.today())
	})
	return err
}

// DeleteNote removes the note at the 1-based position shown by listings.
func (s *Service) DeleteNote(ctx context.Context, position int) error {
	_, _, err := s.mutate(ctx, func(r *syllabus.Repository) error {
		return r.DeleteNote(position)
	})
	return err
}

// Reset wipes the document back to the seeded syllabus. Irreversible.
func (s *Service) Reset(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	return s.Persistence.Save(ctx, syllabus.Default(s.today()))
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}
