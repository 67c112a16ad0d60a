package writer

import (
	"github.com/s3bk/loom/core/glue"
	"github.com/s3bk/loom/engine/stream"
	"github.com/s3bk/loom/engine/style"
)

// alternative is one branch's sub-stream together with the glue
// pending at the point its builder function returned.
type alternative struct {
	entries      []stream.Entry
	trailingGlue glue.Glue
}

// BranchBuilder collects the ordered alternatives of a single branch()
// call. The first Add call is the default alternative; the rest are
// reduced pairwise in Branch and merged against the default.
type BranchBuilder struct {
	parent *StreamWriter
	alts   []alternative
	err    error
}

// Add runs f against a fresh sub-writer that shares the parent's font
// and stylist and starts with the parent's current style, recording
// the resulting sub-stream as one alternative.
func (b *BranchBuilder) Add(f func(*StreamWriter) error) {
	sub := &StreamWriter{
		font:       b.parent.font,
		stylist:    b.parent.stylist,
		styleStack: append([]style.Style(nil), b.parent.styleStack...),
	}
	if err := f(sub); err != nil && b.err == nil {
		b.err = err
	}
	b.alts = append(b.alts, alternative{entries: sub.entries, trailingGlue: sub.pendingGlue})
}

// Branch calls build with a BranchBuilder, then merges the recorded
// alternatives into the writer's stream: the first alternative added
// is the default, executed by skipping past the others; the remaining
// alternatives are reduced pairwise into one combined secondary
// stream before the final merge against the default. The writer's
// pending glue becomes the lattice combination of every alternative's
// trailing glue.
func (w *StreamWriter) Branch(build func(*BranchBuilder)) error {
	b := &BranchBuilder{parent: w}
	build(b)
	if len(b.alts) == 0 {
		return nil
	}
	combined := glue.Any()
	for _, alt := range b.alts {
		combined = glue.Combine(combined, alt.trailingGlue)
	}
	w.pushBranch(b.alts)
	w.pendingGlue = combined
	return b.err
}

// pushBranch appends the merge of b.alts to the writer's stream. If
// more than two alternatives are present, the non-default ones are
// reduced pairwise before the final merge against the default (the
// last two are merged and the result takes their place, until one
// remains), so the emitted structure is always a single binary nesting
// of BranchEntry/BranchExit markers regardless of how many
// alternatives were recorded.
func (w *StreamWriter) pushBranch(alts []alternative) {
	if len(alts) == 1 {
		w.entries = append(w.entries, alts[0].entries...)
		return
	}
	def := alts[0].entries
	others := make([][]stream.Entry, len(alts)-1)
	for i, a := range alts[1:] {
		others[i] = a.entries
	}
	for len(others) > 1 {
		n := len(others)
		b := others[n-1]
		a := others[n-2]
		others = others[:n-2]
		others = append(others, mergeEntries(a, b))
	}
	merged := mergeEntries(def, others[0])
	w.entries = append(w.entries, merged...)
}

// mergeEntries implements the branch-merge procedure: if either side
// is empty the other is used as-is. Otherwise, if both end in an
// identical SpaceEntry, that tail is hoisted out as a shared suffix
// appended after the merged entries; in either case b is reached via
// BranchEntry(len(b)+1) and a by skipping past it via
// BranchExit(len(a)), with a remaining the default (skip-to) path.
func mergeEntries(a, b []stream.Entry) []stream.Entry {
	if len(a) == 0 {
		return append([]stream.Entry(nil), b...)
	}
	if len(b) == 0 {
		return append([]stream.Entry(nil), a...)
	}
	var suffix stream.Entry
	hasSuffix := false
	if sa, ok := a[len(a)-1].(stream.SpaceEntry); ok {
		if sb, ok2 := b[len(b)-1].(stream.SpaceEntry); ok2 && sa == sb {
			suffix = sa
			hasSuffix = true
			a = a[:len(a)-1]
			b = b[:len(b)-1]
		}
	}
	out := make([]stream.Entry, 0, len(a)+len(b)+3)
	out = append(out, stream.BranchEntryMark{Len: len(b) + 1})
	out = append(out, b...)
	out = append(out, stream.BranchExitMark{Skip: len(a)})
	out = append(out, a...)
	if hasSuffix {
		out = append(out, suffix)
	}
	return out
}
