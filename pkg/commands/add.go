package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/swot/pkg/commands/options"
	"tableflip.dev/swot/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
swot add subject "Dibujo Técnico" --category skills
swot add topic "Física" "Dualidad onda-partícula"
swot add note ask about the lab rubric
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSubject(cmd)
	addTopic(cmd)
	addNote(cmd)

	topLevel.AddCommand(cmd)
}

func addSubject(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "subject NAME",
		Short: "Add a subject with a declared category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Subject{
				Service:  svc,
				Name:     args[0],
				Category: co.Category,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCategoryArgs(cmd, co)
	_ = cmd.MarkFlagRequired("category")

	topLevel.AddCommand(cmd)
}

func addTopic(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "topic SUBJECT NAME...",
		Short: "Add a topic to a subject",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Topic{
				Service:  svc,
				Subject:  args[0],
				Name:     strings.Join(args[1:], " "),
				Category: co.Category,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCategoryArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "note TEXT...",
		Short: "Add a dated note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Note{
				Service: svc,
				Text:    strings.Join(args, " "),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
