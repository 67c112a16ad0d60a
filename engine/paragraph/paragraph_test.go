package paragraph_test

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"

	"github.com/s3bk/loom/backend/simplefont"
	"github.com/s3bk/loom/core/glue"
	"github.com/s3bk/loom/engine/paragraph"
	"github.com/s3bk/loom/engine/stream"
	"github.com/s3bk/loom/engine/style"
	"github.com/s3bk/loom/engine/writer"
)

// buildStream runs build against a fresh writer over a simplefont.Font
// and returns the finished stream.
func buildStream(t *testing.T, build func(w *writer.StreamWriter)) (stream.Stream, *simplefont.Font) {
	t.Helper()
	f := simplefont.New()
	w := writer.New(f, nil)
	build(w)
	return w.Finish(), f
}

// TestSingleLineExactFit reproduces the spec's worked scenario of
// word("A") space word("B") linebreak at W=5: one line "A B", factor
// 2, score -4.
func TestSingleLineExactFit(t *testing.T) {
	_, teardown := testconfig.QuickConfig(t)
	defer teardown()

	s, f := buildStream(t, func(w *writer.StreamWriter) {
		assert.NoError(t, w.Word(stream.Atom{Text: "A", Right: glue.Any()}))
		assert.NoError(t, w.Word(stream.Atom{Text: "B", Left: glue.Any()}))
	})

	layout := paragraph.Run(s, 5, f)
	assert.True(t, layout.Feasible())

	lines := layout.Lines()
	assert.Len(t, lines, 1)
	assert.InDelta(t, 2.0, lines[0].Factor, 1e-5)
	assert.InDelta(t, -4.0, layout.Nodes[lines[0].End].Score, 1e-5)

	words := layout.Words(lines[0])
	assert.Len(t, words, 2)
}

// TestForcedLinebreakAlwaysBreaks exercises scenario 6's shape: a
// promoted fill Newline forces a break and stretches the preceding
// line to the target width.
func TestForcedLinebreakAlwaysBreaks(t *testing.T) {
	_, teardown := testconfig.QuickConfig(t)
	defer teardown()

	s, f := buildStream(t, func(w *writer.StreamWriter) {
		assert.NoError(t, w.Word(stream.Atom{Text: "Hello", Right: glue.Any()}))
		w.Promote(glue.HFill())
		assert.NoError(t, w.Word(stream.Atom{Text: "World", Left: glue.Any()}))
	})

	layout := paragraph.Run(s, 10, f)
	assert.True(t, layout.Feasible())
	lines := layout.Lines()
	assert.Len(t, lines, 2)
	// Extend grows the line's own width/stretch to the target, so the
	// fill line always resolves to factor 0 — it needed no further
	// stretching once extended.
	assert.Equal(t, float32(0), lines[0].Factor)
	assert.Len(t, layout.Words(lines[0]), 1)
	assert.Len(t, layout.Words(lines[1]), 1)
}

// TestInfeasibleParagraphReturnsNoLines covers §7.1 / §8's boundary
// case: when no line can ever fit, Lines returns nil, not a panic.
func TestInfeasibleParagraphReturnsNoLines(t *testing.T) {
	_, teardown := testconfig.QuickConfig(t)
	defer teardown()

	s, f := buildStream(t, func(w *writer.StreamWriter) {
		assert.NoError(t, w.Word(stream.Atom{Text: "Supercalifragilisticexpialidocious"}))
	})

	layout := paragraph.Run(s, 1, f)
	assert.False(t, layout.Feasible())
	assert.Nil(t, layout.Lines())
}

// TestEmptyStreamYieldsOneZeroHeightLine covers the boundary case of a
// stream with only the trailing Linebreak.
func TestEmptyStreamYieldsOneZeroHeightLine(t *testing.T) {
	_, teardown := testconfig.QuickConfig(t)
	defer teardown()

	s, f := buildStream(t, func(w *writer.StreamWriter) {})
	layout := paragraph.Run(s, 10, f)
	assert.True(t, layout.Feasible())
	lines := layout.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, float32(0), lines[0].Height)
}

// TestBranchDefaultWinsWhenItFits reproduces the shape of scenario 3:
// a branch whose default alternative fits within width wins, recording
// path bit 0.
func TestBranchDefaultWinsWhenItFits(t *testing.T) {
	_, teardown := testconfig.QuickConfig(t)
	defer teardown()

	s, f := buildStream(t, func(w *writer.StreamWriter) {
		assert.NoError(t, w.Branch(func(b *writer.BranchBuilder) {
			b.Add(func(sw *writer.StreamWriter) error {
				return sw.Word(stream.Atom{Text: "Aa-"})
			})
			b.Add(func(sw *writer.StreamWriter) error {
				return sw.Word(stream.Atom{Text: "Aardvark"})
			})
		}))
	})

	layout := paragraph.Run(s, 4, f)
	assert.True(t, layout.Feasible())
	lines := layout.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, uint64(0), lines[0].Path&1, "default (shorter) alternative should win")
}

// TestPunctuationPendingAcrossSpace guards against folding punct into
// measure too early: a Punctuation immediately followed by a breaking
// Space with no intervening Word must leave punct pending across the
// Space (mirroring engine/column's addWord/addPunctuation split), not
// consume it at the Space itself. The writer folds a trailing breaking
// Space into Finish's Newline, so the stream is assembled directly.
func TestPunctuationPendingAcrossSpace(t *testing.T) {
	_, teardown := testconfig.QuickConfig(t)
	defer teardown()

	f := simplefont.New()
	bang, err := f.Measure(style.Default, "!")
	assert.NoError(t, err)
	s := stream.New([]stream.Entry{
		stream.PunctuationEntry{W: bang},
		stream.SpaceEntry{Breaking: true, Measure: f.MeasureSpace(style.Default, 1)},
		stream.LinebreakEntry{},
	})

	layout := paragraph.Run(s, 5, f)
	assert.True(t, layout.Feasible())
	lines := layout.Lines()
	assert.Len(t, lines, 1)
	assert.InDelta(t, 3.5, lines[0].Factor, 1e-5)
	assert.InDelta(t, -12.25, layout.Nodes[lines[0].End].Score, 1e-5)
}

// TestDPIsDeterministicAcrossRuns guards against any accidental
// reliance on map iteration order or similar nondeterminism creeping
// into the DP: running it twice over the same stream must agree
// exactly, node for node.
func TestDPIsDeterministicAcrossRuns(t *testing.T) {
	_, teardown := testconfig.QuickConfig(t)
	defer teardown()

	build := func(w *writer.StreamWriter) {
		assert.NoError(t, w.Word(stream.Atom{Text: "one", Right: glue.Any()}))
		assert.NoError(t, w.Word(stream.Atom{Text: "two", Left: glue.Any(), Right: glue.Any()}))
		assert.NoError(t, w.Word(stream.Atom{Text: "three", Left: glue.Any()}))
	}
	s1, f1 := buildStream(t, build)
	s2, f2 := buildStream(t, build)

	l1 := paragraph.Run(s1, 8, f1)
	l2 := paragraph.Run(s2, 8, f2)
	assert.Equal(t, l1.Feasible(), l2.Feasible())
	assert.Equal(t, l1.Lines(), l2.Lines())
}
