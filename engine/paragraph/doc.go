// Package paragraph implements the line-break dynamic program: given a
// finished stream.Stream and a target width, it computes the best
// LineBreak ending at every feasible stream position and can back-trace
// from any one of them into a sequence of positioned lines.
package paragraph

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the package's tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MaxBranchDepth is the maximum number of active branches the DP will
// explore along a single line before it starts collapsing additional
// ones to their default side, per the stream's own balance invariant.
const MaxBranchDepth = 64
