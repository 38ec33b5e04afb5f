// Package render defines the contract between renderable values and the
// console that draws them.
package render

import (
	"github.com/alexisbeaulieu97/prism/internal/bidi"
	"github.com/alexisbeaulieu97/prism/internal/segment"
)

// DefaultWidth is used when a context carries no usable width.
const DefaultWidth = 80

// Context describes the area a renderable draws into.
type Context struct {
	// Width is the number of cells available per line.
	Width int
	// Height limits the number of lines; zero means unbounded.
	Height int
	// Direction is the paragraph direction for text that sets none itself.
	Direction bidi.Direction
}

// EffectiveWidth returns Width, or DefaultWidth when Width is not positive.
func (c Context) EffectiveWidth() int {
	if c.Width <= 0 {
		return DefaultWidth
	}
	return c.Width
}

// Renderable produces lines of styled spans. Implementations return at least
// one Segment; empty content renders as one empty line. Only the last
// Segment may leave Newline unset.
type Renderable interface {
	Render(ctx Context) []segment.Segment
}

// Measurer is implemented by renderables that can size themselves without
// rendering.
type Measurer interface {
	Measure(width int) Measurement
}

// Measurement is the footprint of a renderable at some width.
type Measurement struct {
	// Minimum is the narrowest width the content can take without overflow.
	Minimum int
	// Maximum is the widest line the content produces, never above the width
	// it was measured at.
	Maximum int
	// Lines is the number of lines rendered.
	Lines int
}

// Fits reports whether the content fits in a width by height area.
func (m Measurement) Fits(width, height int) bool {
	return m.Minimum <= width && m.Lines <= height
}

// Measure sizes r at width, asking r directly when it is a Measurer and
// rendering it otherwise.
func Measure(r Renderable, width int) Measurement {
	if m, ok := r.(Measurer); ok {
		return m.Measure(width)
	}

	segs := r.Render(Context{Width: width})
	widest := 0
	for _, seg := range segs {
		widest = max(widest, seg.Width())
	}
	if width > 0 {
		widest = min(widest, width)
	}
	return Measurement{Minimum: widest, Maximum: widest, Lines: len(segs)}
}

// Lines is a renderable holding already rendered lines.
type Lines []segment.Segment

// Render returns the lines, guaranteeing the Segment contract.
func (l Lines) Render(Context) []segment.Segment {
	if len(l) == 0 {
		return []segment.Segment{{}}
	}
	out := make([]segment.Segment, len(l))
	copy(out, l)
	for i := range out {
		out[i].Newline = i < len(out)-1
	}
	return out
}

// PlainText renders r at the context and returns its text without styling.
func PlainText(r Renderable, ctx Context) string {
	return segment.PlainText(r.Render(ctx))
}
