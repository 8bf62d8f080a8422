package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/swot/pkg/commands/options"
	"tableflip.dev/swot/pkg/runner/reset"
)

func addReset(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all progress and restore the default syllabus",
		Example: `
swot reset --confirm
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := reset.Reset{
				Service: svc,
				Confirm: co.Confirm,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
