// Command loomfmt is a tiny example driver: it assembles a short
// document with the StreamWriter, runs it through the paragraph and
// column layouts, and prints the positioned words. It exists to give
// the layout core an end-to-end exercise without any real font
// shaping or rendering backend.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"

	"github.com/s3bk/loom/backend/simplefont"
	"github.com/s3bk/loom/core/glue"
	"github.com/s3bk/loom/engine/column"
	"github.com/s3bk/loom/engine/font"
	"github.com/s3bk/loom/engine/paragraph"
	"github.com/s3bk/loom/engine/stream"
	"github.com/s3bk/loom/engine/writer"
	"github.com/s3bk/loom/internal/xlog"
)

var sample = []string{
	"Loom", "lays", "out", "text", "the", "way", "a", "typesetter", "would:",
	"by", "trying", "every", "reasonable", "line", "break", "and", "keeping",
	"the", "one", "that", "looks", "best", "on", "the", "page.",
}

func main() {
	width := flag.Float64("width", 40, "line width")
	height := flag.Float64("height", 12, "column height")
	trace := flag.Bool("trace", false, "enable trace output")
	flag.Parse()

	if *trace {
		xlog.Init(tracing.LevelInfo)
	}

	f := simplefont.New()
	w := writer.New(f, nil)
	for _, word := range sample {
		atom := stream.Atom{Text: word, Left: glue.Any(), Right: glue.Any()}
		if err := w.Word(atom); err != nil {
			fmt.Fprintln(os.Stderr, "loomfmt:", err)
			os.Exit(1)
		}
	}
	s := w.Finish()

	pl := paragraph.Run(s, float32(*width), f)
	if !pl.Feasible() {
		fmt.Fprintln(os.Stderr, "loomfmt: no feasible paragraph layout at this width")
		os.Exit(1)
	}
	fmt.Printf("paragraph layout at width %.0f:\n", *width)
	for _, line := range pl.Lines() {
		for _, pw := range pl.Words(line) {
			fmt.Printf("  x=%.2f %s\n", pw.X, wordText(pw.W))
		}
		fmt.Println("--")
	}

	cl := column.Run(s, float32(*width), float32(*height), f, column.DefaultPenalties)
	fmt.Printf("\ncolumn layout at width %.0f, height %.0f:\n", *width, *height)
	cols := cl.Columns()
	for {
		col, ok := cols.Next()
		if !ok {
			break
		}
		fmt.Println("column:")
		for {
			y, line, ok := col.Next()
			if !ok {
				break
			}
			for {
				pw, ok := line.Next()
				if !ok {
					break
				}
				fmt.Printf("  y=%.2f x=%.2f %s\n", y, pw.X, wordText(pw.W))
			}
		}
	}
}

// wordText recovers the display text from an opaque font.Word by
// asking, at runtime, whether the concrete backend word exposes one.
// simplefont's words do; a production shaping backend's need not.
func wordText(w font.Word) string {
	if t, ok := w.(interface{ Text() string }); ok {
		return t.Text()
	}
	return "?"
}
