/*
PURPOSE:
  Defines the root Cobra command for the w2v-bench CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/w2v-bench/main.go
  - Calls: Child commands (sweep, plot)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands, Root is usually empty or helps.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to NewRootCmd().

RELATED FILES:
  - cmd/w2v-bench/main.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "w2v-bench",
		Short: "Thread-scaling benchmark for word2vec and yzw2v",
		Long: `Times word-embedding trainers across a range of thread counts.
Use 'sweep --help' to record a result table and 'plot --help' to compare two tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default is ./w2v-bench.yaml)")

	rootCmd.AddCommand(newSweepCmd())
	rootCmd.AddCommand(newPlotCmd())
	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
