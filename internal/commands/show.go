package commands

import (
	"streamsched/internal/di"
	"streamsched/internal/structures"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func addShow(topLevel *cobra.Command, flags *structures.CliFlags) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored schedule as a table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := di.InitConsole(flags)
			if err != nil {
				return err
			}
			defer console.Close()
			return console.Show(cmd.Context(), color.Output)
		},
	}
	topLevel.AddCommand(cmd)
}
