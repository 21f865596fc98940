package commands

import (
	"streamsched/internal/di"
	"streamsched/internal/structures"

	"github.com/spf13/cobra"
)

func addServe(topLevel *cobra.Command, flags *structures.CliFlags) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the schedule daemon until SIGINT or SIGTERM.",
		Example: `
streamsched serve -c /etc/streamsched/config.yaml
streamsched serve -c config.yaml -d
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := di.InitApp(flags)
			return err
		},
	}
	topLevel.AddCommand(cmd)
}
