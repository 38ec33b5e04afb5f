// Package ansi serializes rendered segments into terminal escape sequences.
package ansi

import (
	"bufio"
	"io"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/prism/internal/colorsystem"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Pre-allocated escape sequence fragments
const (
	csi      = "\x1b["
	csiReset = "\x1b[0m"
	fg256    = "38;5;"
	bg256    = "48;5;"
	fgRGB    = "38;2;"
	bgRGB    = "48;2;"

	oscLinkOpen  = "\x1b]8;;"
	oscLinkClose = "\x1b]8;;\x1b\\"
	oscST        = "\x1b\\"
)

var attrCodes = map[style.Attr]byte{
	style.AttrBold:          '1',
	style.AttrDim:           '2',
	style.AttrItalic:        '3',
	style.AttrUnderline:     '4',
	style.AttrBlink:         '5',
	style.AttrReverse:       '7',
	style.AttrHidden:        '8',
	style.AttrStrikethrough: '9',
}

// writer is satisfied by strings.Builder, bytes.Buffer and bufio.Writer.
type writer interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// Encoder turns spans into SGR sequences for one color system.
// The zero value emits colors exactly as given.
type Encoder struct {
	System colorsystem.System
}

// New returns an encoder for s.
func New(s colorsystem.System) Encoder {
	return Encoder{System: s}
}

// EncodeSegments writes segs to w, one line per segment.
func (e Encoder) EncodeSegments(w io.Writer, segs []segment.Segment) error {
	bw := bufio.NewWriter(w)
	for _, seg := range segs {
		e.writeSegment(bw, seg)
	}
	return bw.Flush()
}

// Segments returns the encoded form of segs.
func (e Encoder) Segments(segs []segment.Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		e.writeSegment(&b, seg)
	}
	return b.String()
}

// Span returns the encoded form of a single span.
func (e Encoder) Span(span segment.Span) string {
	var b strings.Builder
	e.writeSpan(&b, span)
	return b.String()
}

func (e Encoder) writeSegment(w writer, seg segment.Segment) {
	for _, span := range seg.Spans {
		e.writeSpan(w, span)
	}
	if seg.Newline {
		w.WriteByte('\n')
	}
}

func (e Encoder) writeSpan(w writer, span segment.Span) {
	if span.Text == "" {
		return
	}
	if e.System.Effective() == colorsystem.NoColor {
		w.WriteString(span.Text)
		return
	}

	if span.Link != "" {
		w.WriteString(oscLinkOpen)
		w.WriteString(span.Link)
		w.WriteString(oscST)
	}

	styled := e.writeStyle(w, span.Style)
	w.WriteString(span.Text)
	if styled {
		w.WriteString(csiReset)
	}

	if span.Link != "" {
		w.WriteString(oscLinkClose)
	}
}

// writeStyle emits the SGR codes for st and reports whether any were written.
func (e Encoder) writeStyle(w writer, st style.Style) bool {
	styled := false
	attrs := st.Attrs()
	for _, a := range style.Attrs {
		if attrs&a == 0 {
			continue
		}
		w.WriteString(csi)
		w.WriteByte(attrCodes[a])
		w.WriteByte('m')
		styled = true
	}
	if c, ok := st.Fg(); ok {
		if e.writeColor(w, c, false) {
			styled = true
		}
	}
	if c, ok := st.Bg(); ok {
		if e.writeColor(w, c, true) {
			styled = true
		}
	}
	return styled
}

func (e Encoder) writeColor(w writer, c style.Color, background bool) bool {
	c = colorsystem.Downsample(c, e.System)
	switch c.Kind() {
	case style.KindDefault:
		w.WriteString(csi)
		if background {
			w.WriteString("49m")
		} else {
			w.WriteString("39m")
		}
	case style.KindNamed:
		code := 30 + int(c.Index())
		if c.Index() >= 8 {
			code = 90 + int(c.Index()) - 8
		}
		if background {
			code += 10
		}
		w.WriteString(csi)
		writeInt(w, code)
		w.WriteByte('m')
	case style.KindPalette:
		w.WriteString(csi)
		if background {
			w.WriteString(bg256)
		} else {
			w.WriteString(fg256)
		}
		writeInt(w, int(c.Index()))
		w.WriteByte('m')
	case style.KindRGB:
		r, g, b := c.Triplet()
		w.WriteString(csi)
		if background {
			w.WriteString(bgRGB)
		} else {
			w.WriteString(fgRGB)
		}
		writeInt(w, int(r))
		w.WriteByte(';')
		writeInt(w, int(g))
		w.WriteByte(';')
		writeInt(w, int(b))
		w.WriteByte('m')
	default:
		return false
	}
	return true
}

// writeInt writes integer without allocation
func writeInt(w io.ByteWriter, n int) {
	if n < 0 {
		w.WriteByte('-')
		n = -n
	}
	if n < 10 {
		w.WriteByte(byte('0' + n))
		return
	}
	if n < 100 {
		w.WriteByte(byte('0' + n/10))
		w.WriteByte(byte('0' + n%10))
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	for ; i < len(buf); i++ {
		w.WriteByte(buf[i])
	}
}

// Strip removes every escape sequence from s, leaving the visible text.
func Strip(s string) string {
	return xansi.Strip(s)
}

// StringWidth returns the cell width of s ignoring escape sequences.
func StringWidth(s string) int {
	return segment.CellWidth(Strip(s))
}
