package console

import (
	"fmt"
	"io"

	"github.com/andrescamacho/mediator-go/internal/domain/collab"
)

// WriterSink writes observable effects as lines to an io.Writer. The CLI
// wires it to stdout; tests wire it to a buffer.
type WriterSink struct {
	w io.Writer
}

// Compile-time interface check
var _ collab.EffectSink = (*WriterSink)(nil)

// NewWriterSink creates a sink writing to w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Effect writes one effect line followed by a newline
func (s *WriterSink) Effect(line string) {
	fmt.Fprintln(s.w, line)
}
