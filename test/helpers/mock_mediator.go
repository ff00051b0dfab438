package helpers

import (
	"context"
	"fmt"
	"reflect"

	"github.com/andrescamacho/mediator-go/internal/application/demo/commands"
	"github.com/andrescamacho/mediator-go/internal/application/mediator"
)

// MockMediator is a test double for the request-dispatch Mediator.
// Required because RunScriptCommand dispatches each step as a
// TriggerActionCommand through the mediator.
type MockMediator struct {
	sendFunc func(ctx context.Context, request mediator.Request) (mediator.Response, error)
	callLog  []string // Track which commands were dispatched
}

// Ensure MockMediator implements the Mediator interface
var _ mediator.Mediator = (*MockMediator)(nil)

// NewMockMediator creates a new MockMediator
func NewMockMediator() *MockMediator {
	return &MockMediator{
		callLog: []string{},
	}
}

// Send implements the Mediator interface
func (m *MockMediator) Send(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	// Use custom function if provided
	if m.sendFunc != nil {
		return m.sendFunc(ctx, request)
	}

	// Default behaviors based on request type
	switch req := request.(type) {
	case *commands.TriggerActionCommand:
		m.callLog = append(m.callLog, fmt.Sprintf("TriggerAction:%d/%s", req.Component, req.Action))
		return &commands.TriggerActionResponse{
			Component: fmt.Sprintf("Component %d", req.Component),
			Action:    req.Action,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported request type: %T", request)
	}
}

// SetSendFunc sets a custom function for Send calls
func (m *MockMediator) SetSendFunc(fn func(ctx context.Context, request mediator.Request) (mediator.Response, error)) {
	m.sendFunc = fn
}

// GetCallLog returns the list of commands that were dispatched
func (m *MockMediator) GetCallLog() []string {
	return append([]string{}, m.callLog...)
}

// Register implements the Mediator interface (no-op for tests)
func (m *MockMediator) Register(requestType reflect.Type, handler mediator.RequestHandler) error {
	return nil // No-op for tests
}

// RegisterMiddleware implements the Mediator interface (no-op for tests)
func (m *MockMediator) RegisterMiddleware(middleware mediator.Middleware) {
	// No-op for tests
}
