package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/mediator-go/internal/application/demo"
	"github.com/andrescamacho/mediator-go/internal/application/mediator"
)

// TriggerActionCommand invokes a single named action on one component.
// Component is 1 or 2; Action is one of the labels the component exposes
// ("A"/"B" on component 1, "C"/"D" on component 2).
type TriggerActionCommand struct {
	Component int
	Action    string
}

// TriggerActionResponse reports which action was performed
type TriggerActionResponse struct {
	Component string
	Action    string
}

// TriggerActionHandler - Handles trigger action commands
type TriggerActionHandler struct {
	session *demo.Session
}

// NewTriggerActionHandler creates a new trigger action handler
func NewTriggerActionHandler(session *demo.Session) *TriggerActionHandler {
	return &TriggerActionHandler{
		session: session,
	}
}

// Handle executes the trigger action command
func (h *TriggerActionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*TriggerActionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	component, err := h.invoke(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return &TriggerActionResponse{
		Component: component,
		Action:    cmd.Action,
	}, nil
}

// invoke resolves the component/action pair and runs the action. The
// action itself produces the effect and notifies the coordinator.
func (h *TriggerActionHandler) invoke(ctx context.Context, cmd *TriggerActionCommand) (string, error) {
	switch cmd.Component {
	case 1:
		component := h.session.Component1()
		switch cmd.Action {
		case "A":
			return component.Name(), component.DoA(ctx)
		case "B":
			return component.Name(), component.DoB(ctx)
		default:
			return "", fmt.Errorf("component 1 has no action %q (expected A or B)", cmd.Action)
		}

	case 2:
		component := h.session.Component2()
		switch cmd.Action {
		case "C":
			return component.Name(), component.DoC(ctx)
		case "D":
			return component.Name(), component.DoD(ctx)
		default:
			return "", fmt.Errorf("component 2 has no action %q (expected C or D)", cmd.Action)
		}

	default:
		return "", fmt.Errorf("unknown component %d (expected 1 or 2)", cmd.Component)
	}
}
