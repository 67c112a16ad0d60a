/*
Package glue implements the small lattice of inter-atom spacing hints
that a StreamWriter accumulates between emitted entries: None, a
breaking-or-not Space of some elastic scale, and a Newline that may or
may not fill the remainder of its line.

Glue values combine pairwise via Combine, which implements the writer's
"next-to" operator. Combine panics on the one genuine contradiction in
the lattice — a Newline meeting a non-breaking Space — because that
combination means the caller asked for a line to both end and not end
at the same point, which is a programming error in the driver, not a
recoverable layout condition.
*/
package glue

import "fmt"

// Kind discriminates the Glue variants.
type Kind int8

const (
	// KindNone is the absence of any spacing hint.
	KindNone Kind = iota
	// KindSpace is an elastic space, optionally a legal break point.
	KindSpace
	// KindNewline is a forced line break, optionally filling to the
	// margin.
	KindNewline
)

// Glue is one element of the lattice: None, Space{Breaking,Scale}, or
// Newline{Fill}. Only the fields relevant to Kind are meaningful.
type Glue struct {
	Kind     Kind
	Breaking bool
	Scale    float32
	Fill     bool
}

// None is the zero value of Glue.
var None = Glue{Kind: KindNone}

// Space constructs a Space glue of the given scale and breaking flag.
func Space(breaking bool, scale float32) Glue {
	return Glue{Kind: KindSpace, Breaking: breaking, Scale: scale}
}

// Any is ordinary breaking inter-word space at unit scale.
func Any() Glue { return Space(true, 1.0) }

// NBSpace is non-breaking space at unit scale.
func NBSpace() Glue { return Space(false, 1.0) }

// Newline constructs a forced line break, filling the line if fill is
// true.
func Newline(fill bool) Glue {
	return Glue{Kind: KindNewline, Fill: fill}
}

// HFill is a forced, filling line break.
func HFill() Glue { return Newline(true) }

// Combine implements the lattice's "next-to" operator a | b. None is
// absorbing, not an identity: it cancels whatever glue it meets,
// which is how punctuation written with a None left-glue suppresses
// the preceding word's pending Space. Combine panics if a and b
// contradict (one demands a line break, the other forbids it).
func Combine(a, b Glue) Glue {
	switch {
	case a.Kind == KindNone || b.Kind == KindNone:
		return None
	case a.Kind == KindSpace && b.Kind == KindSpace:
		return Space(a.Breaking && b.Breaking, maxf(a.Scale, b.Scale))
	case a.Kind == KindNewline && b.Kind == KindNewline:
		return Newline(a.Fill || b.Fill)
	case a.Kind == KindNewline && b.Kind == KindSpace:
		if !b.Breaking {
			panic(fmt.Sprintf("glue: Newline combined with non-breaking Space (%+v | %+v): a line cannot both end and not end here", a, b))
		}
		return a
	case a.Kind == KindSpace && b.Kind == KindNewline:
		if !a.Breaking {
			panic(fmt.Sprintf("glue: non-breaking Space combined with Newline (%+v | %+v): a line cannot both end and not end here", a, b))
		}
		return b
	default:
		panic(fmt.Sprintf("glue: unreachable combination %+v | %+v", a, b))
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
