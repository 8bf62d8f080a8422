package options

import (
	"github.com/spf13/cobra"
)

// AgendaOptions captures the flags of agenda-style commands.
type AgendaOptions struct {
	At    string
	In    string
	Force bool
}

func AddAgendaArgs(cmd *cobra.Command, o *AgendaOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		`Plan for an instant instead of now, example: --at="2026-03-02 16:30".`)
	cmd.Flags().StringVar(&o.In, "in", "",
		`Plan ahead by an offset, example: --in=2h or --in=1d6h.`)
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false,
		"Treat a rest block as a study block.")
}
