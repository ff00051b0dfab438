package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/mediator-go/internal/application/demo/commands"
	"github.com/andrescamacho/mediator-go/internal/infrastructure/config"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the mediator demonstration script",
		Long: `Run the demonstration script.

Without configuration this runs the canonical two-step demonstration:
the client triggers action A on component 1, then action D on
component 2. A custom script can be configured under demo.script.

Example:
  mediator run
  mediator run --config ./configs/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			med, _, err := newDispatcher(os.Stdout)
			if err != nil {
				return fmt.Errorf("failed to wire dispatcher: %w", err)
			}

			steps := make([]commands.ScriptStep, 0, len(cfg.Demo.Script))
			for _, step := range cfg.Demo.Script {
				steps = append(steps, commands.ScriptStep{
					Component: step.Component,
					Action:    step.Action,
				})
			}

			if _, err := med.Send(commandContext(cfg), &commands.RunScriptCommand{Steps: steps}); err != nil {
				return fmt.Errorf("demonstration failed: %w", err)
			}

			return nil
		},
	}

	return cmd
}
