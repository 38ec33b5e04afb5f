// Package segment defines the units flowing between the text model, the bidi
// engine and the escape-sequence encoder.
package segment

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Span is a run of text drawn with one style. Text never contains a line
// break.
type Span struct {
	Text  string
	Style style.Style
	// Link is an optional hyperlink target.
	Link string
}

// Styled reports whether the span carries a style or a link.
func (s Span) Styled() bool {
	return !s.Style.IsEmpty() || s.Link != ""
}

// Width returns the display width of the span's text.
func (s Span) Width() int {
	return CellWidth(s.Text)
}

// Segment is one rendered line.
type Segment struct {
	Spans []Span
	// Newline is set when a line break follows the segment.
	Newline bool
}

// PlainText concatenates the segment's span text.
func (s Segment) PlainText() string {
	var b strings.Builder
	for _, span := range s.Spans {
		b.WriteString(span.Text)
	}
	return b.String()
}

// Width returns the display width of the segment.
func (s Segment) Width() int {
	w := 0
	for _, span := range s.Spans {
		w += span.Width()
	}
	return w
}

// PlainText joins segments, emitting "\n" for every Newline flag.
func PlainText(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.PlainText())
		if seg.Newline {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// SplitLines splits s on "\n", dropping a "\r" that precedes it. It always
// returns at least one element.
func SplitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Coalesce merges neighbouring spans with identical style and link and drops
// empty spans. The input is not modified.
func Coalesce(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == span.Style && out[n-1].Link == span.Link {
			out[n-1].Text += span.Text
			continue
		}
		out = append(out, span)
	}
	return out
}

var widthCondition = &runewidth.Condition{EastAsianWidth: true}

// RuneWidth returns the number of terminal cells r occupies. East Asian wide
// and ambiguous characters count as two cells; combining marks and control
// characters, tab included, count as zero. The text package expands tabs
// before it measures.
func RuneWidth(r rune) int {
	return widthCondition.RuneWidth(r)
}

// CellWidth returns the display width of s. Wrapping and measuring both go
// through this function.
func CellWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
