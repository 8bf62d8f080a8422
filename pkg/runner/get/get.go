package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/swot/pkg/app"
	"tableflip.dev/swot/pkg/printers"
)

// Get prints a stored view: the syllabus, the error log or the notes.
type Get struct {
	Service *app.Service

	Kind string
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	r, notice, err := n.Service.Snapshot(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Notice(notice)

	switch n.Kind {
	case "syllabus", "":
		pp.Syllabus(r)
	case "errors":
		pp.Errors(r.ErrorLog())
	case "notes":
		pp.Notes(r.Notes)
	default:
		return fmt.Errorf("unknown view %q, want syllabus, errors or notes", n.Kind)
	}
	return nil
}
