package collab

import (
	"context"
	"fmt"
)

// Coordinator is the concrete mediator. It holds references to both
// components, binds itself as their mediator on construction, and maps
// incoming event labels to reaction sequences on the other components.
//
// Reaction table:
//
//	"A" -> Component2.DoC
//	"D" -> Component1.DoB, then Component2.DoC
//	anything else -> no reaction
type Coordinator struct {
	component1 *Component1
	component2 *Component2
	effects    EffectSink
}

// Compile-time interface check
var _ Mediator = (*Coordinator)(nil)

// NewCoordinator creates the mediator over two pre-existing components and
// attaches itself to both. Components are constructed first, the mediator
// second (two-phase initialization).
func NewCoordinator(component1 *Component1, component2 *Component2, effects EffectSink) *Coordinator {
	m := &Coordinator{
		component1: component1,
		component2: component2,
		effects:    effects,
	}
	component1.Attach(m)
	component2.Attach(m)
	return m
}

// Notify dispatches an incoming event to its reaction sequence. Events
// outside the reaction table are ignored: the notification succeeds and
// no further effects are produced. Reaction order within a row is
// significant and must not be reordered.
func (m *Coordinator) Notify(ctx context.Context, sender Component, event Event) error {
	switch event {
	case EventA:
		m.effects.Effect(fmt.Sprintf("Mediator reacts on %s and triggers following operations:", event))
		return m.component2.DoC(ctx)

	case EventD:
		m.effects.Effect(fmt.Sprintf("Mediator reacts on %s and triggers following operations:", event))
		if err := m.component1.DoB(ctx); err != nil {
			return err
		}
		return m.component2.DoC(ctx)

	default:
		// "B" and "C" arrive here when triggered as reactions. No row in
		// the table matches them, so the notification is a no-op.
		return nil
	}
}

// Component1 returns the first managed component
func (m *Coordinator) Component1() *Component1 {
	return m.component1
}

// Component2 returns the second managed component
func (m *Coordinator) Component2() *Component2 {
	return m.component2
}
