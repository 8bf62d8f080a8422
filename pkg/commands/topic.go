package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/swot/pkg/runner/toggle"
)

func addUnlock(topLevel *cobra.Command) {
	topLevel.AddCommand(toggleCommand(
		"unlock SUBJECT TOPIC",
		"Put a topic into rotation (covered in class)",
		toggle.Unlock,
	))
}

func addLock(topLevel *cobra.Command) {
	topLevel.AddCommand(toggleCommand(
		"lock SUBJECT TOPIC",
		"Take a topic out of rotation",
		toggle.Lock,
	))
}

func addUrgent(topLevel *cobra.Command) {
	topLevel.AddCommand(toggleCommand(
		"urgent SUBJECT TOPIC",
		"Toggle the study-today override on a topic",
		toggle.Urgent,
	))
}

func toggleCommand(use, short string, mode toggle.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := toggle.Toggle{
				Service: svc,
				Mode:    mode,
				Subject: args[0],
				Topic:   args[1],
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
}
