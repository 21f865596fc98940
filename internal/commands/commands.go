package commands

import (
	"streamsched/internal/structures"

	"github.com/spf13/cobra"
)

// New builds the root command. Every subcommand shares the config and debug
// flags.
func New() *cobra.Command {
	flags := &structures.CliFlags{}

	cmd := &cobra.Command{
		Use:           "streamsched",
		Short:         "Weekly stream schedule daemon and tools.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yaml", "path to the YAML config file")
	cmd.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "tee logs to stderr")

	AddCommands(cmd, flags)
	return cmd
}

func AddCommands(topLevel *cobra.Command, flags *structures.CliFlags) {
	addServe(topLevel, flags)
	addShow(topLevel, flags)
	addReset(topLevel, flags)
}
