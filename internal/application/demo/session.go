package demo

import (
	"github.com/andrescamacho/mediator-go/internal/domain/collab"
)

// Session owns one fully wired collaboration graph: the effect sink, both
// components, and the coordinator bound to them. Handlers operate on a
// session instead of constructing components themselves, so independent
// sessions never share state.
type Session struct {
	sink        collab.EffectSink
	component1  *collab.Component1
	component2  *collab.Component2
	coordinator *collab.Coordinator
}

// NewSession builds the collaboration graph: components first, then the
// coordinator, which binds itself into each component.
func NewSession(sink collab.EffectSink) *Session {
	component1 := collab.NewComponent1(sink)
	component2 := collab.NewComponent2(sink)

	return &Session{
		sink:        sink,
		component1:  component1,
		component2:  component2,
		coordinator: collab.NewCoordinator(component1, component2, sink),
	}
}

// Sink returns the session's effect sink
func (s *Session) Sink() collab.EffectSink {
	return s.sink
}

// Component1 returns the first component
func (s *Session) Component1() *collab.Component1 {
	return s.component1
}

// Component2 returns the second component
func (s *Session) Component2() *collab.Component2 {
	return s.component2
}

// Coordinator returns the concrete mediator bound to both components
func (s *Session) Coordinator() *collab.Coordinator {
	return s.coordinator
}
