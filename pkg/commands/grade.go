package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/swot/pkg/runner/grade"
	"tableflip.dev/swot/pkg/schedule"
)

func addGrade(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "grade SUBJECT TOPIC OUTCOME",
		Short: "Grade a review: easy, normal or hard",
		Long: `Grade a finished review session. Easy raises the mastery level and pushes
the next review out, normal keeps the level and a short gap, hard resets the
level to 1, schedules the topic for tomorrow and asks for the mistake.`,
		Example: `
swot grade "Física" "Inducción" easy
swot grade "Matemáticas II" "Integrales" hard
`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{schedule.Easy.String(), schedule.Normal.String(), schedule.Hard.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := grade.Grade{
				Service: svc,
				Subject: args[0],
				Topic:   args[1],
				Outcome: args[2],
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addMistake(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mistake SUBJECT TOPIC TEXT...",
		Short: "Record what went wrong on a topic",
		Example: `
swot mistake "Física" "Inducción" forgot the minus sign in Lenz's law
`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := grade.Mistake{
				Service: svc,
				Subject: args[0],
				Topic:   args[1],
				Text:    strings.Join(args[2:], " "),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
