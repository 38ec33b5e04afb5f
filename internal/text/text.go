// Package text holds the styled text model: lines of spans with alignment,
// overflow and direction settings, plus word wrapping and measurement.
package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/prism/internal/bidi"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Justify selects horizontal alignment within the render width.
type Justify uint8

const (
	// JustifyDefault aligns left-to-right paragraphs left and right-to-left
	// paragraphs right.
	JustifyDefault Justify = iota
	JustifyLeft
	JustifyCenter
	JustifyRight
)

func (j Justify) String() string {
	switch j {
	case JustifyLeft:
		return "left"
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	default:
		return "default"
	}
}

// ParseJustify resolves "default", "left", "center" or "right".
func ParseJustify(s string) (Justify, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return JustifyDefault, nil
	case "left":
		return JustifyLeft, nil
	case "center", "centre":
		return JustifyCenter, nil
	case "right":
		return JustifyRight, nil
	default:
		return JustifyDefault, fmt.Errorf("unknown justify %q", s)
	}
}

// Overflow selects what happens to lines wider than the render width.
type Overflow uint8

const (
	// OverflowWrap wraps at whitespace.
	OverflowWrap Overflow = iota
	// OverflowVisible keeps lines at their natural width.
	OverflowVisible
)

func (o Overflow) String() string {
	if o == OverflowVisible {
		return "visible"
	}
	return "wrap"
}

// ParseOverflow resolves "wrap" or "visible".
func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wrap":
		return OverflowWrap, nil
	case "visible":
		return OverflowVisible, nil
	default:
		return OverflowWrap, fmt.Errorf("unknown overflow %q", s)
	}
}

// Text is a sequence of styled spans split into logical lines. The zero value
// is an empty text ready to use.
type Text struct {
	lines [][]segment.Span

	Justify   Justify
	Overflow  Overflow
	Direction bidi.Direction
}

// New returns an empty text.
func New() *Text {
	return &Text{}
}

// Plain returns an unstyled text holding s verbatim. No markup is parsed.
func Plain(s string) *Text {
	return New().Append(s, style.Style{})
}

// Styled returns a text holding s drawn with st.
func Styled(s string, st style.Style) *Text {
	return New().Append(s, st)
}

func (t *Text) ensureLine() {
	if len(t.lines) == 0 {
		t.lines = [][]segment.Span{nil}
	}
}

// Append adds s drawn with st. Line breaks in s start new lines.
func (t *Text) Append(s string, st style.Style) *Text {
	return t.AppendSpan(segment.Span{Text: s, Style: st})
}

// AppendSpan adds span, splitting it at line breaks.
func (t *Text) AppendSpan(span segment.Span) *Text {
	t.ensureLine()
	for i, line := range segment.SplitLines(span.Text) {
		if i > 0 {
			t.lines = append(t.lines, nil)
		}
		if line == "" {
			continue
		}
		last := len(t.lines) - 1
		piece := span
		piece.Text = line
		t.lines[last] = append(t.lines[last], piece)
	}
	return t
}

// AppendText adds the content of other. Its alignment settings are ignored.
func (t *Text) AppendText(other *Text) *Text {
	if other == nil {
		return t
	}
	t.ensureLine()
	for i, line := range other.lines {
		if i > 0 {
			t.lines = append(t.lines, nil)
		}
		last := len(t.lines) - 1
		t.lines[last] = append(t.lines[last], line...)
	}
	return t
}

// Stylize layers st over the runes in [start, end), counting a line break as
// one rune. Offsets are clamped to the text.
func (t *Text) Stylize(st style.Style, start, end int) *Text {
	return t.mapRange(start, end, func(span segment.Span) segment.Span {
		span.Style = span.Style.Combine(st)
		return span
	})
}

// StylizeLink attaches a hyperlink to the runes in [start, end).
func (t *Text) StylizeLink(link string, start, end int) *Text {
	return t.mapRange(start, end, func(span segment.Span) segment.Span {
		span.Link = link
		return span
	})
}

// mapRange splits spans at the range boundaries and applies fn to every
// piece inside the range.
func (t *Text) mapRange(start, end int, fn func(segment.Span) segment.Span) *Text {
	start = max(start, 0)
	end = min(end, t.Len())
	if start >= end {
		return t
	}

	offset := 0
	for li, line := range t.lines {
		out := make([]segment.Span, 0, len(line)+2)
		for _, span := range line {
			n := utf8.RuneCountInString(span.Text)
			lo, hi := max(start-offset, 0), min(end-offset, n)
			offset += n
			if lo >= hi {
				out = append(out, span)
				continue
			}

			runes := []rune(span.Text)
			if lo > 0 {
				out = append(out, segment.Span{Text: string(runes[:lo]), Style: span.Style, Link: span.Link})
			}
			out = append(out, fn(segment.Span{Text: string(runes[lo:hi]), Style: span.Style, Link: span.Link}))
			if hi < n {
				out = append(out, segment.Span{Text: string(runes[hi:]), Style: span.Style, Link: span.Link})
			}
		}
		t.lines[li] = out
		offset++
	}
	return t
}

// PlainText returns the text without styling, lines joined by "\n".
func (t *Text) PlainText() string {
	var b strings.Builder
	for i, line := range t.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, span := range line {
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

// String implements fmt.Stringer with the plain text.
func (t *Text) String() string {
	return t.PlainText()
}

// Len returns the number of runes in PlainText.
func (t *Text) Len() int {
	return utf8.RuneCountInString(t.PlainText())
}

// Lines returns a copy of the logical lines. There is always at least one.
func (t *Text) Lines() [][]segment.Span {
	if len(t.lines) == 0 {
		return [][]segment.Span{nil}
	}
	out := make([][]segment.Span, len(t.lines))
	for i, line := range t.lines {
		out[i] = segment.Coalesce(line)
	}
	return out
}

// Spans returns the spans of every line in order, merged like Lines. Line
// boundaries are not represented; use Lines to keep them.
func (t *Text) Spans() []segment.Span {
	var out []segment.Span
	for _, line := range t.lines {
		out = append(out, segment.Coalesce(line)...)
	}
	return out
}

// CellWidth returns the display width of the widest logical line, with
// tabs expanded.
func (t *Text) CellWidth() int {
	widest := 0
	for _, line := range t.expandedLines() {
		widest = max(widest, lineWidth(line))
	}
	return widest
}

// Copy returns a deep copy of t.
func (t *Text) Copy() *Text {
	out := *t
	out.lines = make([][]segment.Span, len(t.lines))
	for i, line := range t.lines {
		out.lines[i] = append([]segment.Span(nil), line...)
	}
	return &out
}

// TabSize is the distance in cells between tab stops.
const TabSize = 8

// expandedLines returns Lines with every tab replaced by spaces up to the
// next tab stop.
func (t *Text) expandedLines() [][]segment.Span {
	lines := t.Lines()
	for i, line := range lines {
		lines[i] = expandTabs(line)
	}
	return lines
}

func expandTabs(line []segment.Span) []segment.Span {
	if !strings.Contains(linePlain(line), "\t") {
		return line
	}

	out := make([]segment.Span, 0, len(line))
	col := 0
	for _, span := range line {
		var b strings.Builder
		for _, r := range span.Text {
			if r == '\t' {
				n := TabSize - col%TabSize
				b.WriteString(strings.Repeat(" ", n))
				col += n
				continue
			}
			b.WriteRune(r)
			col += segment.RuneWidth(r)
		}
		span.Text = b.String()
		out = append(out, span)
	}
	return out
}

func lineWidth(line []segment.Span) int {
	w := 0
	for _, span := range line {
		w += span.Width()
	}
	return w
}

func linePlain(line []segment.Span) string {
	var b strings.Builder
	for _, span := range line {
		b.WriteString(span.Text)
	}
	return b.String()
}
