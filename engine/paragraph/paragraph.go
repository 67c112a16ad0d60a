package paragraph

import (
	"github.com/s3bk/loom/core/flex"
	"github.com/s3bk/loom/engine/font"
	"github.com/s3bk/loom/engine/stream"
)

// LineBreak is the DP record recorded at the stream position where a
// line ends: where the line started (Prev), which secondary branches
// it took (Path), the stretch/shrink factor needed to justify it, the
// accumulated score, and the line's height.
type LineBreak struct {
	Prev   int
	Path   uint64
	Factor float32
	Score  float32
	Height float32
}

// Layout is the result of running the line-break DP over a stream at a
// fixed width. Nodes[i] holds the best LineBreak ending at stream
// position i, or nil if no feasible line ends there.
type Layout struct {
	Stream stream.Stream
	Width  float32
	Font   font.Font
	Nodes  []*LineBreak
}

// lineContext tracks the state accumulated while sweeping forward from
// one candidate line start.
type lineContext struct {
	measure  flex.Measure
	punct    flex.Measure
	path     uint64
	branches int
	score    float32
	begin    int
	pos      int
}

// Run computes, for every stream position, the best LineBreak ending
// there, given a target width and the font used to size words.
func Run(s stream.Stream, width float32, f font.Font) *Layout {
	n := s.Len()
	nodes := make([]*LineBreak, n+1)
	nodes[0] = &LineBreak{}
	for start := 0; start <= n; start++ {
		if nodes[start] == nil {
			continue
		}
		ctx := lineContext{begin: start, pos: start, score: nodes[start].Score}
		completeLine(s, width, f, nodes, ctx)
	}
	return &Layout{Stream: s, Width: width, Font: f, Nodes: nodes}
}

// completeLine sweeps forward from ctx.begin, recording a candidate
// LineBreak at every breaking Space and at the terminating Linebreak,
// until the accumulated measure can no longer shrink to fit width.
func completeLine(s stream.Stream, width float32, f font.Font, nodes []*LineBreak, ctx lineContext) {
	n := s.Len()
	for ctx.pos < n {
		if ctx.measure.Shrink > width {
			return
		}
		p := ctx.pos
		switch it := s.At(p).(type) {
		case stream.WordEntry:
			wm := f.MeasureWord(it.W, width)
			ctx.measure = ctx.measure.Add(ctx.punct).Add(wm)
			ctx.punct = flex.Zero
			ctx.pos = p + 1

		case stream.PunctuationEntry:
			ctx.punct = f.MeasureWord(it.W, width)
			ctx.pos = p + 1

		case stream.SpaceEntry:
			if it.Breaking {
				provisional := ctx.measure.Add(ctx.punct.Scale(0.5))
				maybeUpdate(nodes, p+1, ctx.begin, provisional, ctx.path, ctx.score, width)
			}
			ctx.measure = ctx.measure.Add(it.Measure)
			ctx.pos = p + 1

		case stream.LinebreakEntry:
			m := ctx.measure.Add(ctx.punct.Scale(0.5))
			if it.Fill {
				m = m.Extend(width)
			}
			maybeUpdate(nodes, p+1, ctx.begin, m, ctx.path, ctx.score, width)
			return

		case stream.BranchEntryMark:
			if ctx.branches < MaxBranchDepth {
				sec := ctx
				sec.pos = p + 1
				sec.path = ctx.path | (uint64(1) << uint(ctx.branches))
				sec.branches = ctx.branches + 1
				completeLine(s, width, f, nodes, sec)
			} else {
				T().Errorf("paragraph: branch nesting exceeds %d entries starting at %d; collapsing to default", MaxBranchDepth, ctx.begin)
			}
			ctx.pos = p + 1 + it.Len
			ctx.branches++

		case stream.BranchExitMark:
			ctx.pos = p + 1 + it.Skip
		}
	}
}

// maybeUpdate records a candidate LineBreak at position at if measure
// is feasible under width and its score improves on any existing
// record there. Ties keep the existing record (">", not ">=").
func maybeUpdate(nodes []*LineBreak, at, begin int, measure flex.Measure, path uint64, predecessorScore, width float32) bool {
	f, ok := measure.Factor(width)
	if !ok {
		return false
	}
	score := predecessorScore - f*f
	if nodes[at] == nil || score > nodes[at].Score {
		nodes[at] = &LineBreak{Prev: begin, Path: path, Factor: f, Score: score, Height: measure.Height}
	}
	return true
}

// Feasible reports whether a line-break record exists at the end of
// the stream, i.e. whether the whole stream can be laid out at all.
func (l *Layout) Feasible() bool {
	return l.Nodes[l.Stream.Len()] != nil
}

// BackTrace walks Prev pointers from the end of the stream back to 0
// and returns the break indices in forward order (0, ..., len). It
// returns nil if the stream is infeasible at this width.
func (l *Layout) BackTrace() []int {
	last := l.Stream.Len()
	if l.Nodes[last] == nil {
		return nil
	}
	idx := []int{last}
	i := last
	for i != 0 {
		i = l.Nodes[i].Prev
		idx = append(idx, i)
	}
	for a, b := 0, len(idx)-1; a < b; a, b = a+1, b-1 {
		idx[a], idx[b] = idx[b], idx[a]
	}
	return idx
}

// Line is one produced line: the half-open stream range [Begin, End)
// and the stretch/shrink factor it was justified with.
type Line struct {
	Begin, End int
	Factor     float32
	Height     float32
	Path       uint64
}

// Lines reconstructs every line of the paragraph via BackTrace. It
// returns nil if the stream is infeasible at this width.
func (l *Layout) Lines() []Line {
	idx := l.BackTrace()
	if idx == nil {
		return nil
	}
	lines := make([]Line, 0, len(idx)-1)
	for k := 1; k < len(idx); k++ {
		end := idx[k]
		n := l.Nodes[end]
		lines = append(lines, Line{Begin: idx[k-1], End: end, Factor: n.Factor, Height: n.Height, Path: n.Path})
	}
	return lines
}

// PositionedWord is a word (or punctuation mark) placed at a logical
// x-offset within its line.
type PositionedWord struct {
	X float32
	W font.Word
}

// Words re-walks the stream range of line, honoring its recorded path
// bits at any BranchEntry/BranchExit markers, and returns each word at
// the x-offset it would be drawn at.
func (l *Layout) Words(line Line) []PositionedWord {
	var out []PositionedWord
	var measure flex.Measure
	branches := 0
	pos := line.Begin
	for pos < line.End {
		p := pos
		switch it := l.Stream.At(p).(type) {
		case stream.WordEntry:
			out = append(out, PositionedWord{X: measure.At(line.Factor), W: it.W})
			measure = measure.Add(l.Font.MeasureWord(it.W, l.Width))
			pos = p + 1
		case stream.PunctuationEntry:
			out = append(out, PositionedWord{X: measure.At(line.Factor), W: it.W})
			measure = measure.Add(l.Font.MeasureWord(it.W, l.Width))
			pos = p + 1
		case stream.SpaceEntry:
			measure = measure.Add(it.Measure)
			pos = p + 1
		case stream.LinebreakEntry:
			pos = p + 1
		case stream.BranchEntryMark:
			bit := (line.Path >> uint(branches)) & 1
			branches++
			if bit == 1 {
				pos = p + 1
			} else {
				pos = p + 1 + it.Len
			}
		case stream.BranchExitMark:
			pos = p + 1 + it.Skip
		}
	}
	return out
}
