package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/mediator-go/internal/application/demo"
	"github.com/andrescamacho/mediator-go/internal/application/mediator"
	"github.com/andrescamacho/mediator-go/internal/domain/collab"
)

// DescribeGraphQuery returns a description of the collaboration graph:
// which components exist, which actions they expose, and the mediator's
// reaction table.
type DescribeGraphQuery struct{}

// ActionDescription pairs an action with the event it emits
type ActionDescription struct {
	Action string
	Event  string
}

// ComponentDescription describes one component of the graph
type ComponentDescription struct {
	ID      string
	Name    string
	Actions []ActionDescription
}

// ReactionDescription is one row of the mediator's reaction table
type ReactionDescription struct {
	Event     string
	Reactions []string
}

// DescribeGraphResponse is the full graph description
type DescribeGraphResponse struct {
	Components []ComponentDescription
	Reactions  []ReactionDescription
}

// DescribeGraphHandler - Handles describe graph queries
type DescribeGraphHandler struct {
	session *demo.Session
}

// NewDescribeGraphHandler creates a new describe graph handler
func NewDescribeGraphHandler(session *demo.Session) *DescribeGraphHandler {
	return &DescribeGraphHandler{
		session: session,
	}
}

// Handle executes the describe graph query
func (h *DescribeGraphHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	_, ok := request.(*DescribeGraphQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	// Describe the graph as the coordinator sees it: the components come
	// from the mediator's own references, not from a second wiring.
	coordinator := h.session.Coordinator()
	component1 := coordinator.Component1()
	component2 := coordinator.Component2()

	return &DescribeGraphResponse{
		Components: []ComponentDescription{
			{
				ID:   component1.ID().String(),
				Name: component1.Name(),
				Actions: []ActionDescription{
					{Action: "A", Event: collab.EventA.String()},
					{Action: "B", Event: collab.EventB.String()},
				},
			},
			{
				ID:   component2.ID().String(),
				Name: component2.Name(),
				Actions: []ActionDescription{
					{Action: "C", Event: collab.EventC.String()},
					{Action: "D", Event: collab.EventD.String()},
				},
			},
		},
		Reactions: []ReactionDescription{
			{
				Event:     collab.EventA.String(),
				Reactions: []string{fmt.Sprintf("%s does C", component2.Name())},
			},
			{
				Event:     collab.EventD.String(),
				Reactions: []string{
					fmt.Sprintf("%s does B", component1.Name()),
					fmt.Sprintf("%s does C", component2.Name()),
				},
			},
		},
	}, nil
}
