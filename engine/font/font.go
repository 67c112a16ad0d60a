/*
Package font declares the capability the layout core requires from an
external font/shaping backend: measuring text into opaque Word handles
and elastic space, sizing a Word at a given line width, and handing a
Word back to a drawing surface. The core never inspects a Word's
contents — it only carries the handle between Measure and DrawWord.
*/
package font

import (
	"github.com/s3bk/loom/core/flex"
	"github.com/s3bk/loom/engine/style"
)

// Word is an opaque, pre-measured handle to a shaped run of text. The
// core treats it as a capability value; only the Font that produced it
// knows what is inside. Backends embed WordBase to satisfy it without
// exposing their internals to the core.
type Word interface {
	isWord()
}

// WordBase is embedded by concrete backend Word implementations so
// they satisfy Word without the core being able to construct or
// inspect one directly.
type WordBase struct{}

func (WordBase) isWord() {}

// Surface is the opaque drawing target DrawWord writes into. Concrete
// rendering targets (raster, PDF, terminal) are out of scope for the
// core; only the capability shape is declared here.
type Surface interface {
	// Bounds reports the surface's extent in the same units as
	// FlexMeasure, so a caller can clip before drawing.
	Bounds() (width, height float32)
}

// Font is the capability the layout core consumes. Measure is
// fallible: backend measurement failures propagate uncaught, per the
// core's error-handling contract.
type Font interface {
	// Measure shapes text under the given style and returns an opaque
	// Word handle.
	Measure(st style.Style, text string) (Word, error)
	// MeasureSpace returns the elastic size of a space of the given
	// scale under the given style.
	MeasureSpace(st style.Style, scale float32) flex.Measure
	// MeasureWord returns the flex size of w when laid out at the
	// given target line width.
	MeasureWord(w Word, lineWidth float32) flex.Measure
	// DrawWord renders w onto surface at the given logical position.
	DrawWord(surface Surface, x, y float32, w Word) error
}
