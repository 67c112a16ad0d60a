package writer

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"

	"github.com/s3bk/loom/backend/simplefont"
	"github.com/s3bk/loom/core/flex"
	"github.com/s3bk/loom/core/glue"
	"github.com/s3bk/loom/engine/stream"
)

// TestMergeEntriesHoistsSharedTrailingSpace covers the suffix-hoisting
// optimization: when both alternatives end in an identical SpaceEntry,
// it is emitted once after the branch markers instead of duplicated
// inside both sides.
func TestMergeEntriesHoistsSharedTrailingSpace(t *testing.T) {
	_, teardown := testconfig.QuickConfig(t)
	defer teardown()

	space := stream.SpaceEntry{Breaking: true, Measure: flex.Measure{Width: 1}}
	a := []stream.Entry{stream.WordEntry{}, space}
	b := []stream.Entry{stream.WordEntry{}, stream.PunctuationEntry{}, space}

	out := mergeEntries(a, b)

	// BranchEntryMark(len(b')+1), b'..., BranchExitMark(len(a')), a'..., suffix
	assert.Len(t, out, 1+2+1+1+1)
	entry, ok := out[0].(stream.BranchEntryMark)
	assert.True(t, ok)
	assert.Equal(t, 3, entry.Len, "len(b without the hoisted suffix) + 1")
	assert.Equal(t, stream.KindWord, out[1].Kind())
	assert.Equal(t, stream.KindPunctuation, out[2].Kind())
	exit, ok := out[3].(stream.BranchExitMark)
	assert.True(t, ok)
	assert.Equal(t, 1, exit.Skip, "len(a without the hoisted suffix)")
	assert.Equal(t, stream.KindWord, out[4].Kind())
	assert.Equal(t, space, out[5], "the shared suffix is hoisted out exactly once")
}

// TestMergeEntriesNoSuffixWhenTrailingSpacesDiffer covers the negative
// case: trailing SpaceEntry values that differ are not hoisted, and
// both sides keep their own tail.
func TestMergeEntriesNoSuffixWhenTrailingSpacesDiffer(t *testing.T) {
	_, teardown := testconfig.QuickConfig(t)
	defer teardown()

	a := []stream.Entry{stream.WordEntry{}, stream.SpaceEntry{Breaking: true, Measure: flex.Measure{Width: 1}}}
	b := []stream.Entry{stream.WordEntry{}, stream.SpaceEntry{Breaking: false, Measure: flex.Measure{Width: 2}}}

	out := mergeEntries(a, b)

	assert.Len(t, out, 1+len(b)+1+len(a))
	entry, ok := out[0].(stream.BranchEntryMark)
	assert.True(t, ok)
	assert.Equal(t, len(b)+1, entry.Len)
	lastOfB, ok := out[2].(stream.SpaceEntry)
	assert.True(t, ok)
	assert.False(t, lastOfB.Breaking)
	exit, ok := out[3].(stream.BranchExitMark)
	assert.True(t, ok)
	assert.Equal(t, len(a), exit.Skip)
	lastOfA, ok := out[len(out)-1].(stream.SpaceEntry)
	assert.True(t, ok)
	assert.True(t, lastOfA.Breaking)
}

// TestMergeEntriesEmptySideReturnsOtherAsIs covers the degenerate case
// one alternative contributes nothing at all.
func TestMergeEntriesEmptySideReturnsOtherAsIs(t *testing.T) {
	_, teardown := testconfig.QuickConfig(t)
	defer teardown()

	b := []stream.Entry{stream.WordEntry{}, stream.WordEntry{}}

	out := mergeEntries(nil, b)
	assert.Equal(t, b, out)

	out = mergeEntries(b, nil)
	assert.Equal(t, b, out)
}

// TestPushBranchReducesMoreThanTwoAlternativesPairwise covers the
// pairwise reduction at the core of pushBranch: with three
// alternatives recorded, the two non-default ones are merged with each
// other first, and that result is merged against the default last, so
// the emitted stream is a single binary nesting of branch markers.
func TestPushBranchReducesMoreThanTwoAlternativesPairwise(t *testing.T) {
	_, teardown := testconfig.QuickConfig(t)
	defer teardown()

	f := simplefont.New()
	w := New(f, nil)
	assert.NoError(t, w.Branch(func(b *BranchBuilder) {
		b.Add(func(sw *StreamWriter) error { return sw.Word(stream.Atom{Text: "D", Right: glue.Any()}) })
		b.Add(func(sw *StreamWriter) error { return sw.Word(stream.Atom{Text: "E", Right: glue.Any()}) })
		b.Add(func(sw *StreamWriter) error { return sw.Word(stream.Atom{Text: "F", Right: glue.Any()}) })
	}))
	w.Finish()

	// merge(E,F) -> [BranchEntry(2), F, BranchExit(1), E]
	// merge(D, that) -> [BranchEntry(5), BranchEntry(2), F, BranchExit(1), E, BranchExit(1), D]
	assert.Len(t, w.entries, 8, "7 branch entries plus the trailing Finish Linebreak")
	outer, ok := w.entries[0].(stream.BranchEntryMark)
	assert.True(t, ok)
	assert.Equal(t, 5, outer.Len)
	inner, ok := w.entries[1].(stream.BranchEntryMark)
	assert.True(t, ok)
	assert.Equal(t, 2, inner.Len)
	assert.Equal(t, "F", wordText(w.entries[2]))
	innerExit, ok := w.entries[3].(stream.BranchExitMark)
	assert.True(t, ok)
	assert.Equal(t, 1, innerExit.Skip)
	assert.Equal(t, "E", wordText(w.entries[4]))
	outerExit, ok := w.entries[5].(stream.BranchExitMark)
	assert.True(t, ok)
	assert.Equal(t, 1, outerExit.Skip)
	assert.Equal(t, "D", wordText(w.entries[6]))
	assert.Equal(t, stream.KindLinebreak, w.entries[7].Kind())
}

// wordText recovers a WordEntry's display text via the optional Text()
// interface simplefont's words expose, for assertions on ordering.
func wordText(e stream.Entry) string {
	we, ok := e.(stream.WordEntry)
	if !ok {
		return ""
	}
	t, ok := we.W.(interface{ Text() string })
	if !ok {
		return ""
	}
	return t.Text()
}
