package demo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/mediator-go/internal/application/demo"
	"github.com/andrescamacho/mediator-go/test/helpers"
)

func TestSession_CoordinatorManagesSessionComponents(t *testing.T) {
	// Arrange
	sink := helpers.NewRecordingSink()

	// Act
	session := demo.NewSession(sink)

	// Assert - the coordinator's references are the session's components,
	// and both components are attached to that coordinator
	coordinator := session.Coordinator()
	require.NotNil(t, coordinator)
	assert.Same(t, session.Component1(), coordinator.Component1())
	assert.Same(t, session.Component2(), coordinator.Component2())
	assert.Same(t, coordinator, session.Component1().Mediator())
	assert.Same(t, coordinator, session.Component2().Mediator())
	assert.Same(t, sink, session.Sink())
}

func TestSession_IndependentSessionsShareNothing(t *testing.T) {
	// Arrange
	first := demo.NewSession(helpers.NewRecordingSink())
	second := demo.NewSession(helpers.NewRecordingSink())

	// Assert
	assert.NotSame(t, first.Component1(), second.Component1())
	assert.NotSame(t, first.Component2(), second.Component2())
	assert.NotSame(t, first.Coordinator(), second.Coordinator())
}
