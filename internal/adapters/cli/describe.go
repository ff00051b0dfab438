package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/mediator-go/internal/application/demo/queries"
	"github.com/andrescamacho/mediator-go/internal/infrastructure/config"
)

// NewDescribeCommand creates the describe command
func NewDescribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe the collaboration graph and reaction table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrDefault(configPath)

			med, _, err := newDispatcher(os.Stdout)
			if err != nil {
				return fmt.Errorf("failed to wire dispatcher: %w", err)
			}

			response, err := med.Send(commandContext(cfg), &queries.DescribeGraphQuery{})
			if err != nil {
				return fmt.Errorf("describe failed: %w", err)
			}

			description, ok := response.(*queries.DescribeGraphResponse)
			if !ok {
				return fmt.Errorf("unexpected response type %T", response)
			}

			fmt.Println("Components:")
			for _, component := range description.Components {
				fmt.Printf("  %s (%s)\n", component.Name, component.ID)
				for _, action := range component.Actions {
					fmt.Printf("    action %s -> event %q\n", action.Action, action.Event)
				}
			}

			fmt.Println("Reaction table:")
			for _, reaction := range description.Reactions {
				fmt.Printf("  on %q: %s\n", reaction.Event, strings.Join(reaction.Reactions, ", then "))
			}

			return nil
		},
	}

	return cmd
}
