package collab

import "context"

// Mediator receives notifications from components and triggers reactions
// on other components. Components never call each other directly; all
// cross-component communication flows through this interface.
type Mediator interface {
	// Notify informs the mediator that sender emitted the given event.
	// The sender is an opaque identity; the mediator is free to ignore it.
	Notify(ctx context.Context, sender Component, event Event) error
}

// Component is a participant in the collaboration. It exposes identity
// only; concrete variants add their own actions.
type Component interface {
	ID() ComponentID
	Name() string

	// Attach binds the component to a mediator. The reference is
	// non-owning; the same mediator may be shared by many components.
	Attach(m Mediator)
}

// EffectSink receives the observable effects produced by components and
// the mediator. The order of Effect calls is the observable contract:
// a component's own effect always precedes any reaction it triggers.
type EffectSink interface {
	Effect(line string)
}
