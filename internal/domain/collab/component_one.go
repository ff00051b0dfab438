package collab

import "context"

// Component1 exposes actions A and B. Each action produces its observable
// effect and then notifies the mediator with the matching event label.
type Component1 struct {
	BaseComponent
}

// Compile-time interface check
var _ Component = (*Component1)(nil)

// NewComponent1 creates Component 1 writing its effects to the given sink.
// The component starts detached; a mediator binds itself via Attach.
func NewComponent1(effects EffectSink) *Component1 {
	return &Component1{BaseComponent: newBaseComponent("Component 1", effects)}
}

// DoA performs action A and notifies the mediator with event "A"
func (c *Component1) DoA(ctx context.Context) error {
	return c.act(ctx, c, "Component 1 does A.", EventA)
}

// DoB performs action B and notifies the mediator with event "B"
func (c *Component1) DoB(ctx context.Context) error {
	return c.act(ctx, c, "Component 1 does B.", EventB)
}
