/*
Package stream defines the linear, append-only entry stream the layout
DPs consume: Atom (the writer's input unit), Entry (the tagged union of
stream items), and Stream (the immutable, finished sequence).

Entry mirrors the interface-plus-kind-discriminator idiom used
throughout this codebase for closed tagged unions: every concrete entry
type carries a Kind() method instead of relying on a Go type switch
alone, so callers that only need the discriminator avoid an allocation-
free type assertion.
*/
package stream

import (
	"github.com/s3bk/loom/core/flex"
	"github.com/s3bk/loom/core/glue"
	"github.com/s3bk/loom/engine/font"
)

// Kind discriminates the concrete Entry types.
type Kind int8

const (
	KindWord Kind = iota
	KindPunctuation
	KindSpace
	KindLinebreak
	KindBranchEntry
	KindBranchExit
)

// Entry is one element of the linear stream the layout DPs walk.
type Entry interface {
	Kind() Kind
}

// WordEntry carries a pre-measured word.
type WordEntry struct {
	W font.Word
}

func (WordEntry) Kind() Kind { return KindWord }

// PunctuationEntry carries a pre-measured punctuation mark, which
// contributes only half its width when a line breaks immediately after
// it.
type PunctuationEntry struct {
	W font.Word
}

func (PunctuationEntry) Kind() Kind { return KindPunctuation }

// SpaceEntry is materialized elastic space. Breaking marks it as a
// legal line-break point.
type SpaceEntry struct {
	Breaking bool
	Measure  flex.Measure
}

func (SpaceEntry) Kind() Kind { return KindSpace }

// LinebreakEntry is a forced line break. Fill means the line ending
// here should stretch to the full line width before breaking.
type LinebreakEntry struct {
	Fill bool
}

func (LinebreakEntry) Kind() Kind { return KindLinebreak }

// BranchEntryMark opens a branch: the secondary alternative follows
// immediately, then a BranchExitMark, then the default alternative.
// Len counts the secondary alternative plus that BranchExitMark, so a
// reader taking the default side skips Len entries past this mark.
type BranchEntryMark struct {
	Len int
}

func (BranchEntryMark) Kind() Kind { return KindBranchEntry }

// BranchExitMark closes the secondary side of a branch; Skip is the
// length of the following default alternative, consumed by a reader
// that chose the secondary side.
type BranchExitMark struct {
	Skip int
}

func (BranchExitMark) Kind() Kind { return KindBranchExit }

// Atom is one inline unit submitted to the writer: text plus the glue
// hints surrounding it.
type Atom struct {
	Text  string
	Left  glue.Glue
	Right glue.Glue
}

// Stream is the immutable, finished sequence of Entry values produced
// by a StreamWriter. It is safe for concurrent read-only use by any
// number of layout runs.
type Stream struct {
	entries []Entry
}

// New wraps entries as a finished Stream. Callers should treat the
// slice as transferred; Stream does not defensively copy it.
func New(entries []Entry) Stream {
	return Stream{entries: entries}
}

// Len returns the number of entries.
func (s Stream) Len() int { return len(s.entries) }

// At returns the entry at index i.
func (s Stream) At(i int) Entry { return s.entries[i] }

// Entries returns the underlying entries. Callers must not mutate the
// returned slice.
func (s Stream) Entries() []Entry { return s.entries }
