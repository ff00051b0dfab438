package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/mediator-go/internal/application/demo/commands"
	"github.com/andrescamacho/mediator-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage mediator demonstration configuration.

Configuration is loaded from multiple sources with priority:
1. Environment variables (MEDIATOR_* prefix)
2. Config file (config.yaml)
3. Default values

Example:
  mediator config show`,
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Display the current configuration settings.

Example:
  mediator config show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			fmt.Println("Mediator Demonstration Configuration")
			fmt.Println("====================================")

			fmt.Println("Demo:")
			if len(cfg.Demo.Script) == 0 {
				fmt.Println("  Script:           (default)")
				for _, step := range commands.DefaultScript() {
					fmt.Printf("    component %d -> action %s\n", step.Component, step.Action)
				}
			} else {
				fmt.Println("  Script:")
				for _, step := range cfg.Demo.Script {
					fmt.Printf("    component %d -> action %s\n", step.Component, step.Action)
				}
			}

			fmt.Println("\nLogging:")
			fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
			fmt.Printf("  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}

	return cmd
}
