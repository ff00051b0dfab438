package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/mediator-go/internal/application/demo/commands"
	"github.com/andrescamacho/mediator-go/internal/infrastructure/config"
)

// NewTriggerCommand creates the trigger command
func NewTriggerCommand() *cobra.Command {
	var component int
	var action string

	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Trigger a single action on one component",
		Long: `Trigger a single action on one component.

Component 1 exposes actions A and B; component 2 exposes C and D. The
action's effect is printed first, then any mediator reaction.

Example:
  mediator trigger --component 1 --action A
  mediator trigger --component 2 --action D`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if component == 0 {
				return fmt.Errorf("--component flag is required")
			}
			if action == "" {
				return fmt.Errorf("--action flag is required")
			}

			cfg := config.LoadConfigOrDefault(configPath)

			med, _, err := newDispatcher(os.Stdout)
			if err != nil {
				return fmt.Errorf("failed to wire dispatcher: %w", err)
			}

			trigger := &commands.TriggerActionCommand{Component: component, Action: action}
			if _, err := med.Send(commandContext(cfg), trigger); err != nil {
				return fmt.Errorf("trigger failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&component, "component", 0, "Component to trigger: 1 or 2 (required)")
	cmd.Flags().StringVar(&action, "action", "", "Action to invoke: A, B, C or D (required)")

	return cmd
}
