package console_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/mediator-go/internal/adapters/console"
	"github.com/andrescamacho/mediator-go/internal/domain/collab"
)

func TestWriterSink_WritesLines(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	sink := console.NewWriterSink(&buf)

	// Act
	sink.Effect("Component 1 does A.")
	sink.Effect("")

	// Assert
	assert.Equal(t, "Component 1 does A.\n\n", buf.String())
}

func TestWriterSink_CarriesFullDemonstrationTranscript(t *testing.T) {
	// Arrange - the graph wired over a buffer instead of stdout
	var buf bytes.Buffer
	sink := console.NewWriterSink(&buf)
	component1 := collab.NewComponent1(sink)
	component2 := collab.NewComponent2(sink)
	collab.NewCoordinator(component1, component2, sink)

	// Act
	require.NoError(t, component1.DoA(context.Background()))

	// Assert
	assert.Equal(t,
		"Component 1 does A.\n"+
			"Mediator reacts on A and triggers following operations:\n"+
			"Component 2 does C.\n",
		buf.String())
}
