package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/swot/pkg/app"
)

// Subject creates a new subject with a declared category.
type Subject struct {
	Service *app.Service

	Name     string
	Category string
}

func (n *Subject) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if err := n.Service.AddSubject(ctx, n.Name, n.Category); err != nil {
		return err
	}
	fmt.Printf("subject %q added (%s)\n", n.Name, n.Category)
	return nil
}

// Topic appends a topic to an existing subject. An empty category inherits
// the subject default.
type Topic struct {
	Service *app.Service

	Subject  string
	Name     string
	Category string
}

func (n *Topic) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	t, err := n.Service.AddTopic(ctx, n.Subject, n.Name, n.Category)
	if err != nil {
		return err
	}
	fmt.Printf("topic %q added to %s (%s), due today\n", t.Name, n.Subject, t.Category)
	return nil
}

// Note appends a dated free-form note.
type Note struct {
	Service *app.Service

	Text string
}

func (n *Note) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if err := n.Service.AddNote(ctx, n.Text); err != nil {
		return err
	}
	fmt.Println("note added")
	return nil
}
