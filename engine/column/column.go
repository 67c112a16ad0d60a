package column

import (
	"fmt"

	"github.com/s3bk/loom/core/flex"
	"github.com/s3bk/loom/engine/font"
	"github.com/s3bk/loom/engine/stream"
)

// LineBreak is the line-level half of a node in the column DP: the
// same shape as paragraph.LineBreak, but recorded privately here since
// the column DP needs to interleave it with ColumnBreak at the same
// stream position rather than reuse paragraph.Layout's array.
type LineBreak struct {
	Prev   int
	Path   uint64
	Factor float32
	Score  float32
	Height float32
}

// ColumnBreak is the column-level half of a node: where the previous
// column ended and the accumulated score of breaking the column here.
type ColumnBreak struct {
	Prev  int
	Score float32
}

// Break is a DP node: a line always ends here once reached, but the
// column optionally also ends here.
type Break struct {
	Line   LineBreak
	Column *ColumnBreak
}

// Penalties are the score adjustments compute_column applies when it
// closes a column: a too-short final paragraph on a page (widow/orphan
// control) and a preference for fuller columns over emptier ones.
type Penalties struct {
	OneLinePenalty float32
	TwoLinePenalty float32
	FillPenalty    float32
}

// DefaultPenalties are the constants used throughout the worked
// scenarios this package is tested against.
var DefaultPenalties = Penalties{
	OneLinePenalty: -20.0,
	TwoLinePenalty: -2.0,
	FillPenalty:    -10.0,
}

func (p Penalties) numLines(n int) float32 {
	switch n {
	case 1:
		return p.OneLinePenalty
	case 2:
		return p.TwoLinePenalty
	default:
		return 0
	}
}

func (p Penalties) fill(filled, height float32) float32 {
	return p.FillPenalty * (height - filled) / height
}

// context tracks the state accumulated while sweeping forward from one
// candidate line start, identically to paragraph's lineContext.
type context struct {
	measure  flex.Measure
	punct    flex.Measure
	path     uint64
	branches int
	score    float32
	begin    int
	pos      int
}

func (c *context) addWord(m flex.Measure) {
	c.measure = c.measure.Add(c.punct).Add(m)
	c.punct = flex.Zero
}

func (c *context) addPunctuation(m flex.Measure) {
	c.punct = m
}

func (c *context) line() flex.Measure {
	return c.measure.Add(c.punct.Scale(0.5))
}

func (c *context) fill(width float32) {
	c.measure = c.line().Extend(width)
	c.punct = flex.Zero
}

// Layout is the result of running the column-break DP over a stream at
// a fixed width and height. Nodes[i] holds the best Break ending at
// stream position i, or nil if no feasible line ends there at all.
type Layout struct {
	Stream    stream.Stream
	Width     float32
	Height    float32
	Font      font.Font
	Penalties Penalties
	Nodes     []*Break
	Last      int
}

// Run computes the column-break DP for s at the given width and
// height, using f to size words and penalties to score column breaks.
func Run(s stream.Stream, width, height float32, f font.Font, penalties Penalties) *Layout {
	n := s.Len()
	nodes := make([]*Break, n+1)
	nodes[0] = &Break{Column: &ColumnBreak{}}
	l := &Layout{Stream: s, Width: width, Height: height, Font: f, Penalties: penalties, Nodes: nodes}
	l.run()
	return l
}

func (l *Layout) run() {
	n := l.Stream.Len()
	last := 0
	for start := 0; start < n; start++ {
		b := l.Nodes[start]
		if b == nil {
			continue
		}
		last = l.completeLine(context{begin: start, pos: start, score: b.Line.Score})
		l.computeColumn(start, false)
	}
	l.computeColumn(last, true)
	l.Last = last
}

// completeLine sweeps forward from c.begin, recording a candidate line
// break at every breaking Space and at the terminating Linebreak,
// exactly as paragraph.completeLine, and returns the furthest stream
// position any recorded break reaches.
func (l *Layout) completeLine(c context) int {
	last := c.begin
	n := l.Stream.Len()
	for c.pos < n {
		p := c.pos
		switch it := l.Stream.At(p).(type) {
		case stream.WordEntry:
			c.addWord(l.Font.MeasureWord(it.W, l.Width))

		case stream.PunctuationEntry:
			c.addPunctuation(l.Font.MeasureWord(it.W, l.Width))

		case stream.SpaceEntry:
			if it.Breaking {
				if l.maybeUpdate(&c, p+1) {
					last = p + 1
				}
			}
			c.measure = c.measure.Add(it.Measure)

		case stream.LinebreakEntry:
			if it.Fill {
				c.fill(l.Width)
			}
			if l.maybeUpdate(&c, p+1) {
				last = p + 1
			}
			return last

		case stream.BranchEntryMark:
			if c.branches < MaxBranchDepth {
				sub := c
				sub.pos = p + 1
				sub.path = c.path | (uint64(1) << uint(c.branches))
				sub.branches = c.branches + 1
				if bLast := l.completeLine(sub); bLast > last {
					last = bLast
				}
			} else {
				T().Errorf("column: branch nesting exceeds %d entries starting at %d; collapsing to default", MaxBranchDepth, c.begin)
			}
			c.pos += it.Len
			c.branches++

		case stream.BranchExitMark:
			c.pos += it.Skip
		}

		if c.measure.Shrink > l.Width {
			break
		}
		c.pos++
	}
	return last
}

// maybeUpdate records a candidate line break at position at if the
// line swept so far is feasible under width and its score improves on
// any existing line record there; it never touches an existing column
// record at that position.
func (l *Layout) maybeUpdate(c *context, at int) bool {
	f, ok := c.line().Factor(l.Width)
	if !ok {
		return false
	}
	score := c.score - f*f
	candidate := LineBreak{Prev: c.begin, Path: c.path, Factor: f, Score: score, Height: c.measure.Height}
	if b := l.Nodes[at]; b != nil {
		if score > b.Line.Score {
			b.Line = candidate
		}
		return true
	}
	l.Nodes[at] = &Break{Line: candidate}
	return true
}

// computeColumn extends every already-known column break that ends
// before or at n into a candidate column break ending at n, walking
// backwards through line breaks and summing their heights until it
// either exceeds the column height or reaches the start of the
// layout. isLast suppresses the fill penalty for the column closing
// the whole layout, which is never penalized for being under-full.
func (l *Layout) computeColumn(n int, isLast bool) bool {
	numLinesBeforeEnd := 0
	numLinesAtLastBreak := 0
	isLastParagraph := true
	height := float32(0)
	last := n
	found := false

	for {
		lastNode := l.Nodes[last]
		if last > 0 {
			switch l.Stream.At(last - 1).(type) {
			case stream.LinebreakEntry:
				isLastParagraph = false
				numLinesBeforeEnd = 0
			case stream.SpaceEntry:
				numLinesBeforeEnd++
				if isLastParagraph {
					numLinesAtLastBreak++
				}
			default:
				panic(fmt.Sprintf("column: expected a line break at stream position %d, found %#v", last-1, l.Stream.At(last-1)))
			}

			height += lastNode.Line.Height
			if height > l.Height {
				break
			}
		}

		if lastNode.Column != nil {
			score := lastNode.Column.Score + l.Penalties.numLines(numLinesAtLastBreak) + l.Penalties.numLines(numLinesBeforeEnd)
			if !isLast {
				score += l.Penalties.fill(height, l.Height)
			}

			cur := l.Nodes[n]
			if cur.Column == nil || score > cur.Column.Score {
				cur.Column = &ColumnBreak{Prev: last, Score: score}
			}
			found = true
		}

		if last == 0 {
			break
		}
		last = lastNode.Line.Prev
	}
	return found
}
