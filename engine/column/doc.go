// Package column implements the column-break dynamic program: given a
// finished stream.Stream, a column width and a column height, it
// computes the best ColumnBreak ending at every feasible stream
// position (reusing the line-break recurrence densely along the way)
// and exposes the result as a lazy sequence of columns, lines and
// positioned words.
package column

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the package's tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MaxBranchDepth mirrors paragraph.MaxBranchDepth: the maximum number
// of active branches explored along a single line before additional
// ones collapse to their default side.
const MaxBranchDepth = 64
