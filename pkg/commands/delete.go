package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/swot/pkg/runner/del"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"del", "rm"},
		Short:   "Delete something. There is no undo.",
		Example: `
swot delete subject "Dibujo Técnico"
swot delete topic "Física" "Óptica Geométrica"
swot delete error "Física" "Inducción"
swot delete note 3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	deleteSubject(cmd)
	deleteTopic(cmd)
	deleteNote(cmd)
	deleteError(cmd)

	topLevel.AddCommand(cmd)
}

func deleteSubject(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "subject NAME",
		Short: "Delete a subject and all its topics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := del.Subject{Service: svc, Name: args[0]}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func deleteTopic(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "topic SUBJECT NAME",
		Short: "Delete a single topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := del.Topic{Service: svc, Subject: args[0], Name: args[1]}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func deleteError(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "error SUBJECT TOPIC",
		Short: "Clear a topic's error log entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := del.Error{Service: svc, Subject: args[0], Topic: args[1]}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func deleteNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "note POSITION",
		Short: "Delete the note at the listed position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := del.Note{Service: svc, Position: pos}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
