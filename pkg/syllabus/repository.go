package syllabus

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/swot/pkg/timeutil"
)

var (
	// ErrValidation rejects malformed user input at the boundary. No
	// mutation is applied when it fires.
	ErrValidation = errors.New("syllabus: invalid input")

	// ErrNotFound marks lookups for subjects or topics that do not exist.
	ErrNotFound = errors.New("syllabus: not found")
)

// notesKey is the reserved document key holding the notes list. Subject names
// may not collide with it.
const notesKey = "_notes"

// Note is a dated free-form note.
type Note struct {
	Text string        `json:"text"`
	Date timeutil.Date `json:"date"`
}

// Ref points at a topic inside its subject, used for cross-subject listings
// like the error notebook.
type Ref struct {
	Subject string
	Topic   *Topic
}

// Repository is the whole persisted document: subjects with their ordered
// topic lists, plus the notes list. It is loaded and saved as one unit.
type Repository struct {
	Subjects map[string][]*Topic
	Notes    []Note
}

// New returns an empty repository.
func New() *Repository {
	return &Repository{Subjects: map[string][]*Topic{}}
}

// SubjectNames returns subject names sorted lexicographically. This is the
// canonical iteration order everywhere ordering matters, since Go map order
// is randomized.
func (r *Repository) SubjectNames() []string {
	names := make([]string, 0, len(r.Subjects))
	for name := range r.Subjects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Topics returns the ordered topic list for a subject.
func (r *Repository) Topics(subject string) ([]*Topic, error) {
	topics, ok := r.Subjects[subject]
	if !ok {
		return nil, fmt.Errorf("%w: subject %q", ErrNotFound, subject)
	}
	return topics, nil
}

// Find locates a topic by subject and name.
func (r *Repository) Find(subject, name string) (*Topic, error) {
	topics, err := r.Topics(subject)
	if err != nil {
		return nil, err
	}
	for _, t := range topics {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: topic %q in %q", ErrNotFound, name, subject)
}

// DefaultCategory is the category new topics inherit within a subject: the
// category of its first topic.
func (r *Repository) DefaultCategory(subject string) Category {
	topics := r.Subjects[subject]
	if len(topics) == 0 {
		return ""
	}
	return topics[0].Category
}

// AddSubject creates a subject. The declared category is carried by a starter
// topic so that later additions can inherit it.
func (r *Repository) AddSubject(name string, category Category, today timeutil.Date) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: subject name required", ErrValidation)
	}
	if name == notesKey {
		return fmt.Errorf("%w: subject name %q is reserved", ErrValidation, name)
	}
	if _, ok := r.Subjects[name]; ok {
		return fmt.Errorf("%w: subject %q already exists", ErrValidation, name)
	}
	if _, err := ParseCategory(string(category)); err != nil {
		return err
	}
	starter := NewTopic("First topic (rename me)", category, today)
	starter.Unlocked = true
	r.Subjects[name] = []*Topic{starter}
	return nil
}

// AddTopic appends a topic to a subject. An empty category inherits the
// subject default. Manually added topics enter the rotation immediately:
// unlocked, flagged urgent, due today.
func (r *Repository) AddTopic(subject, name string, category Category, today timeutil.Date) (*Topic, error) {
	topics, err := r.Topics(subject)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: topic name required", ErrValidation)
	}
	for _, t := range topics {
		if t.Name == name {
			return nil, fmt.Errorf("%w: topic %q already exists in %q", ErrValidation, name, subject)
		}
	}
	if category == "" {
		category = r.DefaultCategory(subject)
	}
	if _, err := ParseCategory(string(category)); err != nil {
		return nil, err
	}
	t := NewTopic(name, category, today)
	t.Unlocked = true
	t.ExtraQueue = true
	r.Subjects[subject] = append(topics, t)
	return t, nil
}

// DeleteSubject removes a subject and all its topics. Irreversible.
func (r *Repository) DeleteSubject(name string) error {
	if _, ok := r.Subjects[name]; !ok {
		return fmt.Errorf("%w: subject %q", ErrNotFound, name)
	}
	delete(r.Subjects, name)
	return nil
}

// DeleteTopic removes one topic from a subject. Irreversible.
func (r *Repository) DeleteTopic(subject, name string) error {
	topics, err := r.Topics(subject)
	if err != nil {
		return err
	}
	for i, t := range topics {
		if t.Name == name {
			r.Subjects[subject] = append(topics[:i], topics[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: topic %q in %q", ErrNotFound, name, subject)
}

// AddNote appends a dated note.
func (r *Repository) AddNote(text string, today timeutil.Date) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: note text required", ErrValidation)
	}
	r.Notes = append(r.Notes, Note{Text: text, Date: today})
	return nil
}

// DeleteNote removes the note at the given (1-based) position.
func (r *Repository) DeleteNote(position int) error {
	if position < 1 || position > len(r.Notes) {
		return fmt.Errorf("%w: note %d", ErrNotFound, position)
	}
	r.Notes = append(r.Notes[:position-1], r.Notes[position:]...)
	return nil
}

// ErrorLog lists every topic with a recorded mistake, in subject order.
func (r *Repository) ErrorLog() []Ref {
	var refs []Ref
	for _, subject := range r.SubjectNames() {
		for _, t := range r.Subjects[subject] {
			if t.LastError != "" {
				refs = append(refs, Ref{Subject: subject, Topic: t})
			}
		}
	}
	return refs
}

// Validate checks every topic record and the reserved-key constraint.
func (r *Repository) Validate() error {
	for subject, topics := range r.Subjects {
		if subject == notesKey {
			return fmt.Errorf("%w: subject name %q is reserved", ErrValidation, subject)
		}
		for _, t := range topics {
			if err := t.Validate(); err != nil {
				return fmt.Errorf("subject %q: %w", subject, err)
			}
		}
	}
	return nil
}

// MarshalJSON writes the document in its stored shape: subject name mapped to
// its topic list, with notes under the reserved key.
func (r *Repository) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(r.Subjects)+1)
	for subject, topics := range r.Subjects {
		doc[subject] = topics
	}
	if r.Notes == nil {
		doc[notesKey] = []Note{}
	} else {
		doc[notesKey] = r.Notes
	}
	return json.Marshal(doc)
}

// UnmarshalJSON reads the stored shape back, splitting the reserved notes key
// from the subject map and validating every record.
func (r *Repository) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	subjects := make(map[string][]*Topic, len(doc))
	var notes []Note
	for key, raw := range doc {
		if key == notesKey {
			if err := json.Unmarshal(raw, &notes); err != nil {
				return fmt.Errorf("notes: %w", err)
			}
			continue
		}
		var topics []*Topic
		if err := json.Unmarshal(raw, &topics); err != nil {
			return fmt.Errorf("subject %q: %w", key, err)
		}
		subjects[key] = topics
	}
	r.Subjects = subjects
	r.Notes = notes
	return r.Validate()
}
