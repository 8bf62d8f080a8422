package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/swot/pkg/runner/browse"
	"tableflip.dev/swot/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the live agenda interface",
		Example: `
swot ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			return tui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}

func addBrowse(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "open the read-only syllabus browser",
		Example: `
swot browse
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			i := browse.UI{Service: svc}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
