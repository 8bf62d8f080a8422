// Package del removes subjects, topics and notes. All removals are
// irreversible, progress included.
package del

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/swot/pkg/app"
)

type Subject struct {
	Service *app.Service

	Name string
}

func (n *Subject) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	if err := n.Service.DeleteSubject(ctx, n.Name); err != nil {
		return err
	}
	fmt.Printf("subject %q deleted\n", n.Name)
	return nil
}

type Topic struct {
	Service *app.Service

	Subject string
	Name    string
}

func (n *Topic) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	if err := n.Service.DeleteTopic(ctx, n.Subject, n.Name); err != nil {
		return err
	}
	fmt.Printf("topic %q deleted from %s\n", n.Name, n.Subject)
	return nil
}

// Error wipes a topic's error log entry once the mistake is learned.
type Error struct {
	Service *app.Service

	Subject string
	Topic   string
}

func (n *Error) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	if err := n.Service.ClearError(ctx, n.Subject, n.Topic); err != nil {
		return err
	}
	fmt.Printf("error log entry cleared for %s · %s\n", n.Subject, n.Topic)
	return nil
}

type Note struct {
	Service *app.Service

	// Position is 1-based, as shown by "swot get notes".
	Position int
}

func (n *Note) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	if err := n.Service.DeleteNote(ctx, n.Position); err != nil {
		return err
	}
	fmt.Printf("note %d deleted\n", n.Position)
	return nil
}
