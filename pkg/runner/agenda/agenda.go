package agenda

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/swot/pkg/app"
	"tableflip.dev/swot/pkg/printers"
	"tableflip.dev/swot/pkg/timeutil"
)

// Agenda prints what to study right now, at an explicit instant, or a
// look-ahead offset from now.
type Agenda struct {
	Service *app.Service

	// At is the "YYYY-MM-DD HH:MM" override; empty means now.
	At string
	// In is a look-ahead offset such as "2h"; mutually exclusive with At.
	In    string
	Force bool
}

func (n *Agenda) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not plan, no service")
	}
	if n.At != "" && n.In != "" {
		return errors.New("--at and --in are mutually exclusive")
	}

	at := time.Time{}
	if n.At != "" {
		parsed, err := timeutil.ParseStamp(n.At)
		if err != nil {
			return err
		}
		at = parsed
	}
	if n.In != "" {
		offset, err := timeutil.ParseOffset(n.In)
		if err != nil {
			return err
		}
		at = time.Now().Add(offset)
	}

	view, err := n.Service.Agenda(ctx, at, n.Force)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Agenda(view)
	return nil
}
