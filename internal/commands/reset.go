package commands

import (
	"streamsched/internal"
	"streamsched/internal/di"
	"streamsched/internal/structures"

	"github.com/spf13/cobra"
)

type resetOptions struct {
	Yes bool
}

func addReset(topLevel *cobra.Command, flags *structures.CliFlags) {
	ro := &resetOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the stored schedule with the built-in default.",
		Example: `
streamsched reset -c config.yaml --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ro.Yes {
				return internal.ErrNotConfirmed
			}
			console, err := di.InitConsole(flags)
			if err != nil {
				return err
			}
			defer console.Close()
			return console.Reset(cmd.Context(), cmd.OutOrStdout(), ro.Yes)
		},
	}
	cmd.Flags().BoolVarP(&ro.Yes, "yes", "y", false, "confirm the overwrite")
	topLevel.AddCommand(cmd)
}
