package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/mediator-go/internal/application/demo"
	"github.com/andrescamacho/mediator-go/internal/application/mediator"
)

// ScriptStep is one client trigger in a demonstration script
type ScriptStep struct {
	Component int
	Action    string
}

// RunScriptCommand executes a sequence of client triggers against the
// session's collaboration graph. An empty Steps slice runs the canonical
// demonstration: action A on component 1, then action D on component 2.
type RunScriptCommand struct {
	Steps []ScriptStep
}

// RunScriptResponse reports how many steps were executed
type RunScriptResponse struct {
	StepsRun int
}

// DefaultScript returns the canonical two-step demonstration script
func DefaultScript() []ScriptStep {
	return []ScriptStep{
		{Component: 1, Action: "A"},
		{Component: 2, Action: "D"},
	}
}

// RunScriptHandler - Handles run script commands. Each step is announced
// through the effect sink and dispatched as a TriggerActionCommand, so
// the same dispatch path serves the script runner and the CLI trigger.
type RunScriptHandler struct {
	med     mediator.Mediator
	session *demo.Session
}

// NewRunScriptHandler creates a new run script handler
func NewRunScriptHandler(med mediator.Mediator, session *demo.Session) *RunScriptHandler {
	return &RunScriptHandler{
		med:     med,
		session: session,
	}
}

// Handle executes the run script command
func (h *RunScriptHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RunScriptCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	steps := cmd.Steps
	if len(steps) == 0 {
		steps = DefaultScript()
	}

	sink := h.session.Sink()
	for i, step := range steps {
		if i > 0 {
			// Blank line between client triggers, matching the
			// demonstration transcript.
			sink.Effect("")
		}
		sink.Effect(fmt.Sprintf("Client triggers operation %s.", step.Action))

		trigger := &TriggerActionCommand{Component: step.Component, Action: step.Action}
		if _, err := h.med.Send(ctx, trigger); err != nil {
			return nil, fmt.Errorf("script step %d (%s on component %d): %w", i+1, step.Action, step.Component, err)
		}
	}

	return &RunScriptResponse{StepsRun: len(steps)}, nil
}
