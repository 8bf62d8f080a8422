package grade

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/swot/pkg/app"
	"tableflip.dev/swot/pkg/glyph"
	"tableflip.dev/swot/pkg/schedule"
)

// Grade applies a review outcome to a topic and prints the reschedule.
type Grade struct {
	Service *app.Service

	Subject string
	Topic   string
	Outcome string
}

func (n *Grade) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not grade, no service")
	}

	o, err := schedule.ParseOutcome(n.Outcome)
	if err != nil {
		return err
	}

	t, err := n.Service.Grade(ctx, n.Subject, n.Topic, o)
	if err != nil {
		return err
	}

	c := color.New()
	f := color.New(color.Faint)
	_, _ = c.Fprintf(color.Output, "%s · %s  %s\n", n.Subject, t.Name, glyph.LevelBar(t.Level))
	_, _ = f.Fprintf(color.Output, "next review %s\n", t.NextReview)

	if t.PendingError {
		w := color.New(color.FgHiYellow)
		_, _ = w.Fprintf(color.Output, "record the mistake: swot mistake %q %q <what went wrong>\n", n.Subject, t.Name)
	}
	return nil
}

// Mistake records the error text for a topic's last failed review.
type Mistake struct {
	Service *app.Service

	Subject string
	Topic   string
	Text    string
}

func (n *Mistake) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not record, no service")
	}

	t, err := n.Service.RecordMistake(ctx, n.Subject, n.Topic, n.Text)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s · %s: %s\n", glyph.Drill, n.Subject, t.Name, t.LastError)
	return nil
}
