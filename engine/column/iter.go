package column

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/s3bk/loom/core/flex"
	"github.com/s3bk/loom/engine/font"
	"github.com/s3bk/loom/engine/stream"
)

// Columns lazily walks the column-break chain from the end of the
// layout back to its start, yielding one Column per call to Next in
// forward (top-to-bottom) document order.
//
// If Height is too small to fit even a single line, the layout never
// records a column break at Layout.Last; the original algorithm this
// is ported from unconditionally unwraps that break and panics. This
// port checks first and returns an iterator that yields nothing.
type Columns struct {
	layout *Layout
	stack  *arraystack.Stack
}

// Columns returns an iterator over l's columns. It never panics: a
// layout for which Height admits no single line yields zero columns.
func (l *Layout) Columns() *Columns {
	stack := arraystack.New()
	last := l.Last
	if last > 0 {
		b := l.Nodes[last]
		if b == nil || b.Column == nil {
			T().Errorf("column: height %v is too small to fit a single line; yielding zero columns", l.Height)
			return &Columns{layout: l, stack: stack}
		}
		for last > 0 {
			stack.Push(last)
			nb := l.Nodes[last]
			if nb == nil || nb.Column == nil {
				break
			}
			last = nb.Column.Prev
		}
	}
	return &Columns{layout: l, stack: stack}
}

// Next returns the next Column in forward document order, or
// (nil, false) once the layout is exhausted.
func (cs *Columns) Next() (*Column, bool) {
	v, ok := cs.stack.Pop()
	if !ok {
		return nil, false
	}
	return newColumn(v.(int), cs.layout), true
}

// Column is one fixed-height block of lines.
type Column struct {
	layout *Layout
	stack  *arraystack.Stack
	y      float32
}

func newColumn(last int, layout *Layout) *Column {
	stack := arraystack.New()
	b := layout.Nodes[last]
	if b == nil || b.Column == nil {
		return &Column{layout: layout, stack: stack}
	}
	first := b.Column.Prev
	for last > first {
		stack.Push(last)
		nb := layout.Nodes[last]
		if nb == nil {
			break
		}
		last = nb.Line.Prev
	}
	return &Column{layout: layout, stack: stack}
}

// Next returns the vertical offset (measured from the column's top)
// and contents of the next Line in the column, in top-to-bottom
// order, or (0, nil, false) once the column is exhausted.
func (c *Column) Next() (float32, *Line, bool) {
	v, ok := c.stack.Pop()
	if !ok {
		return 0, nil, false
	}
	last := v.(int)
	b := c.layout.Nodes[last]
	c.y += b.Line.Height
	ln := &Line{
		layout: c.layout,
		pos:    b.Line.Prev,
		end:    last - 1,
		line:   b.Line,
	}
	return c.y, ln, true
}

// PositionedWord pairs a word or punctuation entry with the x-offset
// it should be drawn at within its line.
type PositionedWord struct {
	X float32
	W font.Word
}

// Line walks the content of one laid-out line, word by word.
type Line struct {
	layout   *Layout
	pos, end int
	branches int
	measure  flex.Measure
	line     LineBreak
}

// Next returns the next word or punctuation mark in the line along
// with its x-offset, or (zero, false) once the line is exhausted.
func (ln *Line) Next() (PositionedWord, bool) {
	for ln.pos < ln.end {
		p := ln.pos
		ln.pos++
		switch it := ln.layout.Stream.At(p).(type) {
		case stream.WordEntry:
			x := ln.measure.At(ln.line.Factor)
			ln.measure = ln.measure.Add(ln.layout.Font.MeasureWord(it.W, ln.layout.Width))
			return PositionedWord{X: x, W: it.W}, true

		case stream.PunctuationEntry:
			x := ln.measure.At(ln.line.Factor)
			ln.measure = ln.measure.Add(ln.layout.Font.MeasureWord(it.W, ln.layout.Width))
			return PositionedWord{X: x, W: it.W}, true

		case stream.SpaceEntry:
			ln.measure = ln.measure.Add(it.Measure)

		case stream.BranchEntryMark:
			if ln.line.Path&(uint64(1)<<uint(ln.branches)) == 0 {
				ln.pos += it.Len
			}
			ln.branches++

		case stream.BranchExitMark:
			ln.pos += it.Skip

		case stream.LinebreakEntry:
			panic("column: unexpected linebreak entry inside a line body")
		}
	}
	return PositionedWord{}, false
}
