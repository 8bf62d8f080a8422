// Package toggle flips per-topic flags: unlocked, locked and urgent.
package toggle

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/swot/pkg/app"
	"tableflip.dev/swot/pkg/glyph"
	"tableflip.dev/swot/pkg/syllabus"
)

type Mode int

const (
	Unlock Mode = iota
	Lock
	Urgent
)

type Toggle struct {
	Service *app.Service

	Mode    Mode
	Subject string
	Topic   string
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle, no service")
	}

	var t *syllabus.Topic
	var err error
	switch n.Mode {
	case Unlock:
		t, err = n.Service.Unlock(ctx, n.Subject, n.Topic)
	case Lock:
		t, err = n.Service.Lock(ctx, n.Subject, n.Topic)
	case Urgent:
		t, err = n.Service.ToggleUrgent(ctx, n.Subject, n.Topic)
	default:
		return fmt.Errorf("unknown toggle mode %d", n.Mode)
	}
	if err != nil {
		return err
	}

	switch n.Mode {
	case Unlock:
		fmt.Printf("%s · %s unlocked, due %s\n", n.Subject, t.Name, t.NextReview)
	case Lock:
		fmt.Printf("%s %s · %s locked\n", glyph.Locked, n.Subject, t.Name)
	case Urgent:
		if t.ExtraQueue {
			fmt.Printf("%s %s · %s marked urgent\n", glyph.Urgent, n.Subject, t.Name)
		} else {
			fmt.Printf("%s · %s urgency cleared\n", n.Subject, t.Name)
		}
	}
	return nil
}
