package collab

import "context"

// Component2 exposes actions C and D.
type Component2 struct {
	BaseComponent
}

// Compile-time interface check
var _ Component = (*Component2)(nil)

// NewComponent2 creates Component 2 writing its effects to the given sink
func NewComponent2(effects EffectSink) *Component2 {
	return &Component2{BaseComponent: newBaseComponent("Component 2", effects)}
}

// DoC performs action C and notifies the mediator with event "C"
func (c *Component2) DoC(ctx context.Context) error {
	return c.act(ctx, c, "Component 2 does C.", EventC)
}

// DoD performs action D and notifies the mediator with event "D"
func (c *Component2) DoD(ctx context.Context) error {
	return c.act(ctx, c, "Component 2 does D.", EventD)
}
