package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/swot/pkg/syllabus"
)

// CategoryOptions captures the study category flag.
type CategoryOptions struct {
	Category string
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	names := make([]string, 0, len(syllabus.AllCategories()))
	for _, c := range syllabus.AllCategories() {
		names = append(names, string(c))
	}
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Study category, one of: "+strings.Join(names, ", ")+".")
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// ConfirmOptions guards irreversible commands.
type ConfirmOptions struct {
	Confirm bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVar(&o.Confirm, "confirm", false,
		"Actually do it. There is no undo.")
}
