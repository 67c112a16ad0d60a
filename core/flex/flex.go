/*
Package flex implements the elastic-length arithmetic used throughout the
layout core: a four-component measure of shrink, natural width, stretch
and height, plus the handful of operations the line- and column-break
dynamic programs need to evaluate candidate breaks.

A Measure never carries a negative component and always satisfies
Shrink <= Width <= Stretch; callers that violate this leave the type in
an unspecified but not unsafe state — the DP layers above never produce
such values from well-formed input.
*/
package flex

// Measure is a four-component elastic length: a word, a run of glue, or
// an accumulated line all reduce to one of these.
type Measure struct {
	Shrink  float32
	Width   float32
	Stretch float32
	Height  float32
}

// Zero is the additive identity.
var Zero = Measure{}

// Add returns the component-wise sum of m and other, taking the max of
// the two heights rather than summing them — stacking glue next to a
// word does not make the line taller than its tallest item.
func (m Measure) Add(other Measure) Measure {
	return Measure{
		Shrink:  m.Shrink + other.Shrink,
		Width:   m.Width + other.Width,
		Stretch: m.Stretch + other.Stretch,
		Height:  maxf(m.Height, other.Height),
	}
}

// AddTo adds other into m in place.
func (m *Measure) AddTo(other Measure) {
	*m = m.Add(other)
}

// Scale multiplies the shrink/width/stretch components by f, leaving
// height untouched.
func (m Measure) Scale(f float32) Measure {
	return Measure{
		Shrink:  m.Shrink * f,
		Width:   m.Width * f,
		Stretch: m.Stretch * f,
		Height:  m.Height,
	}
}

// At returns the physical length of m when stretched or shrunk by
// factor f: positive f stretches towards Stretch, negative f shrinks
// towards Shrink. A measure with no stretch (or shrink) capacity on
// the relevant side collapses to Width regardless of f, rather than
// multiplying a zero range by a potentially infinite f and producing
// NaN: a rigid box simply cannot move, no matter how hard Factor says
// to pull it.
func (m Measure) At(f float32) float32 {
	if f >= 0 {
		if m.Stretch == m.Width {
			return m.Width
		}
		return m.Width + f*(m.Stretch-m.Width)
	}
	if m.Width == m.Shrink {
		return m.Width
	}
	return m.Width + f*(m.Width-m.Shrink)
}

// Factor returns the factor f to pass to At so that a line using this
// measure is considered feasible at the given width, and true, or
// (0, false) if width is not reachable at all (width < m.Shrink). A
// width exactly equal to m.Width yields f == 0, the unique solution.
// When width differs from m.Width but the relevant side of the
// measure has no stretch or shrink capacity (a perfectly rigid box),
// f is the raw, possibly infinite ratio delta/diff rather than a
// clamped value: the measure is still feasible (it fits, or can
// shrink to fit), it is just scored as arbitrarily bad by the DP's
// -f² term, the same way a genuinely unbounded stretch would be. This
// never produces NaN here — At is the one place an infinite factor is
// made safe again.
func (m Measure) Factor(width float32) (float32, bool) {
	if width < m.Shrink {
		return 0, false
	}
	if width == m.Width {
		return 0, true
	}
	delta := width - m.Width
	var diff float32
	if delta >= 0 {
		diff = m.Stretch - m.Width
	} else {
		diff = m.Width - m.Shrink
	}
	return delta / diff, true
}

// Extend grows Width and, if necessary, Stretch so that the measure can
// reach at least width.
func (m Measure) Extend(width float32) Measure {
	out := m
	if out.Width < width {
		out.Width = width
	}
	if out.Stretch < out.Width {
		out.Stretch = out.Width
	}
	return out
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
