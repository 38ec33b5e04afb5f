package text

import (
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/bidi"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
)

// Measure reports the footprint of t wrapped at width. Maximum never exceeds
// width; Minimum is the widest word.
func (t *Text) Measure(width int) render.Measurement {
	width = max(width, 1)
	lines := t.layout(width)
	widest := 0
	for _, line := range lines {
		widest = max(widest, lineWidth(line))
	}
	return render.Measurement{
		Minimum: t.minimumWidth(),
		Maximum: min(widest, width),
		Lines:   len(lines),
	}
}

func (t *Text) layout(width int) [][]segment.Span {
	if t.Overflow == OverflowVisible {
		return t.expandedLines()
	}
	return t.Wrap(width)
}

// Render lays t out for ctx. Lines are wrapped in logical order first, then
// reordered for display when the paragraph runs right to left or the line
// holds right-to-left characters, and finally aligned.
func (t *Text) Render(ctx render.Context) []segment.Segment {
	width := ctx.EffectiveWidth()
	lines := t.layout(width)

	dir := t.Direction
	if dir == bidi.Auto {
		dir = ctx.Direction
	}

	segs := make([]segment.Segment, 0, len(lines))
	for i, line := range lines {
		plain := linePlain(line)
		rtl := dir == bidi.RTL || (dir == bidi.Auto && bidi.IsRTL(plain))
		if dir == bidi.RTL || bidi.HasRTL(plain) {
			line = bidi.ReorderSpans(line, dir)
		}
		segs = append(segs, segment.Segment{
			Spans:   t.align(line, width, rtl),
			Newline: i < len(lines)-1,
		})
	}

	if ctx.Height > 0 && len(segs) > ctx.Height {
		segs = segs[:ctx.Height]
		segs[len(segs)-1].Newline = false
	}
	return segs
}

func (t *Text) align(line []segment.Span, width int, rtl bool) []segment.Span {
	pad := width - lineWidth(line)
	if pad <= 0 {
		return line
	}

	justify := t.Justify
	if justify == JustifyDefault {
		justify = JustifyLeft
		if rtl {
			justify = JustifyRight
		}
	}

	switch justify {
	case JustifyRight:
		return prepend(line, pad)
	case JustifyCenter:
		return prepend(line, pad/2)
	default:
		return line
	}
}

func prepend(line []segment.Span, n int) []segment.Span {
	if n <= 0 {
		return line
	}
	out := make([]segment.Span, 0, len(line)+1)
	out = append(out, segment.Span{Text: strings.Repeat(" ", n)})
	return append(out, line...)
}
