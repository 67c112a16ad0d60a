// Package xlog wires the global trace sink used by every package's own
// T() function. Library code never imports this package: it only ever
// reads gtrace.CoreTracer, which stays unset (and silently discards
// everything) until something calls Init.
package xlog

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Init points gtrace.CoreTracer at a standard-library-backed log
// adapter and sets its level. It is meant to be called once, from
// main, by a binary that wants to see trace output; tests that want
// tracing use gotestingadapter via testconfig.QuickConfig instead.
func Init(level tracing.TraceLevel) {
	t := gologadapter.New()
	t.SetTraceLevel(level)
	gtrace.CoreTracer = t
}
