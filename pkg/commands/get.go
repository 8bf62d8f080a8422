package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/swot/pkg/printers"
	"tableflip.dev/swot/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "get [view]",
		Short:     "Print a stored view: syllabus, errors or notes",
		ValidArgs: []string{"syllabus", "errors", "notes"},
		Args:      cobra.MaximumNArgs(1),
		Example: `
swot get
swot get errors
swot get notes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			kind := ""
			if len(args) > 0 {
				kind = args[0]
			}
			s := get.Get{
				Service: svc,
				Kind:    kind,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the marker legend",
		RunE: func(cmd *cobra.Command, args []string) error {
			pp := printers.PrettyPrint{}
			pp.NewLine()
			pp.Legend()
			pp.NewLine()
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
