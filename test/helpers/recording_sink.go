package helpers

import (
	"github.com/andrescamacho/mediator-go/internal/domain/collab"
)

// RecordingSink captures observable effects in order. Tests assert on the
// recorded lines to verify effect-before-notification ordering.
type RecordingSink struct {
	lines []string
}

// Ensure RecordingSink implements the EffectSink interface
var _ collab.EffectSink = (*RecordingSink)(nil)

// NewRecordingSink creates a new RecordingSink
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{
		lines: []string{},
	}
}

// Effect records one effect line
func (s *RecordingSink) Effect(line string) {
	s.lines = append(s.lines, line)
}

// Lines returns a copy of the recorded effect lines
func (s *RecordingSink) Lines() []string {
	return append([]string{}, s.lines...)
}

// Clear discards all recorded lines
func (s *RecordingSink) Clear() {
	s.lines = []string{}
}
