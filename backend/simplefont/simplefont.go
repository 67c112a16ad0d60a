/*
Package simplefont is a minimal, stand-in font.Font implementation used
by tests and the cmd/loomfmt example driver. It performs no real text
shaping: every word measures to {shrink:|t|, width:|t|, stretch:|t|,
height:1} in rune count, and every space of scale s measures to
{shrink:s/2, width:s, stretch:2s, height:0} — exactly the stipulation
spec.md's worked scenarios are defined against. A production font
shaping backend is explicitly out of scope for this repository; this
package exists only so the layout core is exercisable without one.
*/
package simplefont

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/s3bk/loom/core/flex"
	"github.com/s3bk/loom/engine/font"
	"github.com/s3bk/loom/engine/style"
)

// word is simplefont's concrete font.Word: the normalized text and its
// rune count.
type word struct {
	font.WordBase
	text  string
	runes int
}

// Text returns the normalized text the word was measured from, for
// callers (tests, the example driver) that need to display it — the
// layout core itself never calls this.
func (w word) Text() string { return w.text }

// Font measures text by rune count under NFC normalization; it never
// fails and ignores style (a production backend would vary width by
// family/weight/size).
type Font struct{}

// New returns a ready-to-use simplefont.Font.
func New() *Font { return &Font{} }

// Measure implements font.Font.
func (f *Font) Measure(_ style.Style, text string) (font.Word, error) {
	n := norm.NFC.String(text)
	count := 0
	for range n {
		count++
	}
	return word{text: n, runes: count}, nil
}

// MeasureSpace implements font.Font, following spec's literal
// stipulation: {shrink:s/2, width:s, stretch:2s, height:0}.
func (f *Font) MeasureSpace(_ style.Style, scale float32) flex.Measure {
	return flex.Measure{Shrink: scale / 2, Width: scale, Stretch: scale * 2, Height: 0}
}

// MeasureWord implements font.Font: a word's flex size does not depend
// on line width for this backend, matching spec's "constant for raster
// backends" case.
func (f *Font) MeasureWord(w font.Word, _ float32) flex.Measure {
	ww, ok := w.(word)
	if !ok {
		return flex.Zero
	}
	n := float32(ww.runes)
	return flex.Measure{Shrink: n, Width: n, Stretch: n, Height: 1}
}

// DrawWord implements font.Font by writing a debug representation to
// surface if it supports it, otherwise it is a no-op — there is no
// concrete rendering target in this repository.
func (f *Font) DrawWord(surface font.Surface, x, y float32, w font.Word) error {
	if d, ok := surface.(interface{ Debugf(string, ...interface{}) }); ok {
		ww, _ := w.(word)
		d.Debugf(fmt.Sprintf("draw %q at (%.2f,%.2f)", ww.text, x, y))
	}
	return nil
}
