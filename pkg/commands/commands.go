package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/swot/pkg/app"
	"tableflip.dev/swot/pkg/commands/options"
	"tableflip.dev/swot/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "swot",
		Short: base.Wrap80("Spaced-repetition study planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAgenda(topLevel)
	addUI(topLevel)
	addBrowse(topLevel)
	addGrade(topLevel)
	addMistake(topLevel)
	addUnlock(topLevel)
	addLock(topLevel)
	addUrgent(topLevel)
	addAdd(topLevel)
	addDelete(topLevel)
	addGet(topLevel)
	addKey(topLevel)
	addReset(topLevel)
	addVersion(topLevel)
}

// loadService builds the shared service over the configured store.
func loadService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.New(p), nil
}
