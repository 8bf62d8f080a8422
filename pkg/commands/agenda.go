package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/swot/pkg/commands/options"
	"tableflip.dev/swot/pkg/runner/agenda"
)

func addAgenda(topLevel *cobra.Command) {
	ao := &options.AgendaOptions{}

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show what to study right now",
		Example: `
swot agenda
swot agenda --force
swot agenda --in=2h
swot agenda --at="2026-03-02 16:30"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := agenda.Agenda{
				Service: svc,
				At:      ao.At,
				In:      ao.In,
				Force:   ao.Force,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAgendaArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
