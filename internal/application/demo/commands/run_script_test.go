package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/mediator-go/internal/application/demo"
	"github.com/andrescamacho/mediator-go/internal/application/demo/commands"
	"github.com/andrescamacho/mediator-go/internal/application/mediator"
	"github.com/andrescamacho/mediator-go/test/helpers"
)

// newScriptedDispatcher wires a session plus a real dispatcher with the
// trigger and script handlers registered, mirroring the CLI wiring.
func newScriptedDispatcher(t *testing.T) (mediator.Mediator, *helpers.RecordingSink) {
	t.Helper()

	sink := helpers.NewRecordingSink()
	session := demo.NewSession(sink)

	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*commands.TriggerActionCommand](med, commands.NewTriggerActionHandler(session)))
	require.NoError(t, mediator.RegisterHandler[*commands.RunScriptCommand](med, commands.NewRunScriptHandler(med, session)))

	return med, sink
}

func TestRunScriptHandler_DefaultScriptTranscript(t *testing.T) {
	// Arrange
	med, sink := newScriptedDispatcher(t)

	// Act - empty steps fall back to the canonical demonstration
	response, err := med.Send(context.Background(), &commands.RunScriptCommand{})

	// Assert - the full transcript, in order, with a blank line between steps
	require.NoError(t, err)
	assert.Equal(t, 2, response.(*commands.RunScriptResponse).StepsRun)
	assert.Equal(t, []string{
		"Client triggers operation A.",
		"Component 1 does A.",
		"Mediator reacts on A and triggers following operations:",
		"Component 2 does C.",
		"",
		"Client triggers operation D.",
		"Component 2 does D.",
		"Mediator reacts on D and triggers following operations:",
		"Component 1 does B.",
		"Component 2 does C.",
	}, sink.Lines())
}

func TestRunScriptHandler_CustomScript(t *testing.T) {
	// Arrange
	med, sink := newScriptedDispatcher(t)

	// Act
	response, err := med.Send(context.Background(), &commands.RunScriptCommand{
		Steps: []commands.ScriptStep{{Component: 1, Action: "B"}},
	})

	// Assert - "B" has no reaction row, so only the client banner and effect
	require.NoError(t, err)
	assert.Equal(t, 1, response.(*commands.RunScriptResponse).StepsRun)
	assert.Equal(t, []string{
		"Client triggers operation B.",
		"Component 1 does B.",
	}, sink.Lines())
}

func TestRunScriptHandler_DispatchesStepsInOrder(t *testing.T) {
	// Arrange - mock dispatcher records which triggers were sent
	sink := helpers.NewRecordingSink()
	session := demo.NewSession(sink)
	mock := helpers.NewMockMediator()
	handler := commands.NewRunScriptHandler(mock, session)

	// Act
	_, err := handler.Handle(context.Background(), &commands.RunScriptCommand{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"TriggerAction:1/A", "TriggerAction:2/D"}, mock.GetCallLog())
}

func TestRunScriptHandler_FailingStepAbortsScript(t *testing.T) {
	// Arrange
	med, sink := newScriptedDispatcher(t)

	// Act - second step is invalid
	_, err := med.Send(context.Background(), &commands.RunScriptCommand{
		Steps: []commands.ScriptStep{
			{Component: 1, Action: "A"},
			{Component: 2, Action: "A"},
		},
	})

	// Assert - first step ran, failure names the offending step
	require.Error(t, err)
	assert.Contains(t, err.Error(), "script step 2")
	assert.Contains(t, sink.Lines(), "Component 1 does A.")
}

func TestDefaultScript(t *testing.T) {
	assert.Equal(t, []commands.ScriptStep{
		{Component: 1, Action: "A"},
		{Component: 2, Action: "D"},
	}, commands.DefaultScript())
}
