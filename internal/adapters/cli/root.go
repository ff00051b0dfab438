package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mediator",
		Short: "Mediator pattern demonstration - components collaborating through a mediator",
		Long: `Mediator pattern demonstration.

Two components communicate indirectly through a central mediator: each
action produces an observable effect and notifies the mediator, which
reacts by triggering actions on the other component.

Examples:
  mediator run
  mediator trigger --component 1 --action A
  mediator trigger --component 2 --action D
  mediator describe
  mediator config show`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose dispatch logging on stderr")

	// Add commands
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewTriggerCommand())
	rootCmd.AddCommand(NewDescribeCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
