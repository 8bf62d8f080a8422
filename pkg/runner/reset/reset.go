package reset

import (
	"context"
	"errors"
	"fmt"
)

// Resetter is the slice of the service the runner needs.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Reset wipes all stored data back to the seeded syllabus.
type Reset struct {
	Service Resetter

	Confirm bool
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reset, no service")
	}
	if !n.Confirm {
		return errors.New("reset wipes all progress; re-run with --confirm")
	}
	if err := n.Service.Reset(ctx); err != nil {
		return err
	}
	fmt.Println("syllabus reset to defaults")
	return nil
}
