// Package writer implements StreamWriter, the only way an external
// evaluator produces a stream.Stream: it resolves the glue lattice
// between emitted atoms, asks a font.Font to measure words and spaces,
// and merges writer-branch alternatives into a single linear stream
// with BranchEntry/BranchExit markers.
package writer

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the package's tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
