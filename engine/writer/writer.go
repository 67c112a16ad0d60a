package writer

import (
	"github.com/s3bk/loom/core/glue"
	"github.com/s3bk/loom/engine/font"
	"github.com/s3bk/loom/engine/stream"
	"github.com/s3bk/loom/engine/style"
)

// StreamWriter accepts writer operations and emits a well-formed
// stream.Entry sequence. It is not safe for concurrent use; a document
// evaluator drives exactly one StreamWriter at a time.
type StreamWriter struct {
	font        font.Font
	stylist     *style.Stylist
	styleStack  []style.Style
	pendingGlue glue.Glue
	entries     []stream.Entry
}

// New returns a StreamWriter that measures words through f and
// resolves with() style names through st. If st is nil, all style
// names resolve to style.Default.
func New(f font.Font, st *style.Stylist) *StreamWriter {
	return &StreamWriter{font: f, stylist: st}
}

func (w *StreamWriter) currentStyle() style.Style {
	if len(w.styleStack) == 0 {
		return style.Default
	}
	return w.styleStack[len(w.styleStack)-1]
}

// materialize turns a resolved Glue value into at most one stream
// Entry, per the materialization table in the component design: None
// produces nothing, Space becomes a measured SpaceEntry, Newline
// becomes a LinebreakEntry.
func (w *StreamWriter) materialize(g glue.Glue) stream.Entry {
	switch g.Kind {
	case glue.KindNone:
		return nil
	case glue.KindSpace:
		return stream.SpaceEntry{
			Breaking: g.Breaking,
			Measure:  w.font.MeasureSpace(w.currentStyle(), g.Scale),
		}
	case glue.KindNewline:
		return stream.LinebreakEntry{Fill: g.Fill}
	default:
		return nil
	}
}

// writeGlue combines the currently pending glue with left and, if the
// result materializes to an entry, appends it. The combined value is
// then consumed — callers must set pendingGlue to whatever glue
// follows afterwards.
func (w *StreamWriter) writeGlue(left glue.Glue) {
	combined := glue.Combine(w.pendingGlue, left)
	if e := w.materialize(combined); e != nil {
		w.entries = append(w.entries, e)
	}
}

func (w *StreamWriter) push(left, right glue.Glue, emit func() error) error {
	w.writeGlue(left)
	err := emit()
	w.pendingGlue = right
	return err
}

// Word measures a and emits a WordEntry, resolving any pending glue
// against a.Left first and leaving a.Right as the new pending glue.
func (w *StreamWriter) Word(a stream.Atom) error {
	return w.push(a.Left, a.Right, func() error {
		word, err := w.font.Measure(w.currentStyle(), a.Text)
		if err != nil {
			return err
		}
		w.entries = append(w.entries, stream.WordEntry{W: word})
		return nil
	})
}

// Punctuation is identical to Word but emits a PunctuationEntry, which
// the paragraph and column DPs treat specially at line ends.
func (w *StreamWriter) Punctuation(a stream.Atom) error {
	return w.push(a.Left, a.Right, func() error {
		word, err := w.font.Measure(w.currentStyle(), a.Text)
		if err != nil {
			return err
		}
		w.entries = append(w.entries, stream.PunctuationEntry{W: word})
		return nil
	})
}

// Promote folds g into the pending glue without emitting anything.
func (w *StreamWriter) Promote(g glue.Glue) {
	w.pendingGlue = glue.Combine(w.pendingGlue, g)
}

// With pushes the style registered under name (or style.Default if
// unknown) for the duration of body, then pops it. Style affects
// subsequent Measure calls only; it does not itself emit an entry.
func (w *StreamWriter) With(name string, body func(*StreamWriter) error) error {
	var st style.Style
	if w.stylist != nil {
		st = w.stylist.Get(name)
	} else {
		st = style.Default
	}
	w.styleStack = append(w.styleStack, st)
	defer func() { w.styleStack = w.styleStack[:len(w.styleStack)-1] }()
	return body(w)
}

// Finish materializes a trailing Newline{Fill:false} and returns the
// immutable, finished Stream. A pending None glue does not suppress it:
// the finished stream always ends in exactly one LinebreakEntry. The
// StreamWriter must not be used again afterwards.
func (w *StreamWriter) Finish() stream.Stream {
	g := glue.Newline(false)
	if w.pendingGlue.Kind != glue.KindNone {
		g = glue.Combine(w.pendingGlue, g)
	}
	w.entries = append(w.entries, w.materialize(g))
	return stream.New(w.entries)
}
