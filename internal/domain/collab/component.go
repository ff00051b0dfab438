package collab

import (
	"context"

	"github.com/google/uuid"
)

// ComponentID is an opaque, stable identity for a component. The mediator
// contract only requires identity, never component state, so the ID wraps
// a UUID rather than exposing anything about the component itself.
type ComponentID struct {
	value uuid.UUID
}

// NewComponentID generates a fresh component identity
func NewComponentID() ComponentID {
	return ComponentID{value: uuid.New()}
}

// String returns the canonical string form of the identity
func (id ComponentID) String() string {
	return id.value.String()
}

// Equals reports whether two identities refer to the same component
func (id ComponentID) Equals(other ComponentID) bool {
	return id.value == other.value
}

// BaseComponent is the shared capability composed into each component
// variant: an identity, a display name, an optional mediator reference
// assigned after construction, and the sink receiving observable effects.
type BaseComponent struct {
	id       ComponentID
	name     string
	mediator Mediator
	effects  EffectSink
}

func newBaseComponent(name string, effects EffectSink) BaseComponent {
	return BaseComponent{
		id:      NewComponentID(),
		name:    name,
		effects: effects,
	}
}

// ID returns the component's opaque identity
func (c *BaseComponent) ID() ComponentID {
	return c.id
}

// Name returns the component's display name
func (c *BaseComponent) Name() string {
	return c.name
}

// Attach binds the component to a mediator. Called by the mediator during
// its own construction (two-phase initialization).
func (c *BaseComponent) Attach(m Mediator) {
	c.mediator = m
}

// Mediator returns the currently attached mediator, or nil
func (c *BaseComponent) Mediator() Mediator {
	return c.mediator
}

// act performs one named action: it fails fast when no mediator is
// attached, produces the action's observable effect, then notifies the
// mediator. Effect before notification is an invariant; callers rely on
// the sink ordering.
func (c *BaseComponent) act(ctx context.Context, sender Component, effect string, event Event) error {
	if c.mediator == nil {
		return NewNotAttachedError(c.name)
	}
	c.effects.Effect(effect)
	return c.mediator.Notify(ctx, sender, event)
}
