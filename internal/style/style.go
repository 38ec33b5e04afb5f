// Package style holds the value types every other rendering package builds on:
// colors, text attributes and their composition.
package style

import "strings"

// Attr is a set of text attributes.
type Attr uint16

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough
)

// AttrNone is the empty attribute set.
const AttrNone Attr = 0

// Attrs lists every attribute in SGR order.
var Attrs = []Attr{
	AttrBold, AttrDim, AttrItalic, AttrUnderline,
	AttrBlink, AttrReverse, AttrHidden, AttrStrikethrough,
}

var attrNames = map[Attr]string{
	AttrBold:          "bold",
	AttrDim:           "dim",
	AttrItalic:        "italic",
	AttrUnderline:     "underline",
	AttrBlink:         "blink",
	AttrReverse:       "reverse",
	AttrHidden:        "hidden",
	AttrStrikethrough: "strike",
}

// String returns the keyword used in style definitions.
func (a Attr) String() string {
	if name, ok := attrNames[a]; ok {
		return name
	}
	parts := make([]string, 0, len(Attrs))
	for _, attr := range Attrs {
		if a&attr != 0 {
			parts = append(parts, attrNames[attr])
		}
	}
	return strings.Join(parts, " ")
}

// Style is a comparable value describing how a run of text is drawn.
//
// Attribute flags only accumulate: Combine ORs them, so a later style can
// never switch off an attribute set by an earlier one.
type Style struct {
	fg    Color
	bg    Color
	attrs Attr
}

// New returns the empty style.
func New() Style {
	return Style{}
}

// Foreground returns a copy of s with the foreground color set.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background returns a copy of s with the background color set.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// With returns a copy of s with the given attributes added.
func (s Style) With(a Attr) Style {
	s.attrs |= a
	return s
}

func (s Style) Bold() Style          { return s.With(AttrBold) }
func (s Style) Dim() Style           { return s.With(AttrDim) }
func (s Style) Italic() Style        { return s.With(AttrItalic) }
func (s Style) Underline() Style     { return s.With(AttrUnderline) }
func (s Style) Blink() Style         { return s.With(AttrBlink) }
func (s Style) Reverse() Style       { return s.With(AttrReverse) }
func (s Style) Hidden() Style        { return s.With(AttrHidden) }
func (s Style) Strikethrough() Style { return s.With(AttrStrikethrough) }

// Fg returns the foreground color and whether one is set.
func (s Style) Fg() (Color, bool) { return s.fg, s.fg.IsSet() }

// Bg returns the background color and whether one is set.
func (s Style) Bg() (Color, bool) { return s.bg, s.bg.IsSet() }

// Attrs returns the attribute set.
func (s Style) Attrs() Attr { return s.attrs }

// Has reports whether every attribute in a is set.
func (s Style) Has(a Attr) bool { return s.attrs&a == a }

// IsEmpty reports whether s carries no color and no attribute.
func (s Style) IsEmpty() bool {
	return !s.fg.IsSet() && !s.bg.IsSet() && s.attrs == AttrNone
}

// Combine layers overlay on top of s. Colors resolve to the overlay's value
// when it sets one; attributes are the union of both.
func (s Style) Combine(overlay Style) Style {
	out := s
	if overlay.fg.IsSet() {
		out.fg = overlay.fg
	}
	if overlay.bg.IsSet() {
		out.bg = overlay.bg
	}
	out.attrs |= overlay.attrs
	return out
}

// Chain combines styles left to right.
func Chain(styles ...Style) Style {
	var out Style
	for _, s := range styles {
		out = out.Combine(s)
	}
	return out
}

// String renders s as a style definition, e.g. "bold red on blue".
func (s Style) String() string {
	parts := make([]string, 0, len(Attrs)+3)
	for _, a := range Attrs {
		if s.attrs&a != 0 {
			parts = append(parts, attrNames[a])
		}
	}
	if s.fg.IsSet() {
		parts = append(parts, s.fg.String())
	}
	if s.bg.IsSet() {
		parts = append(parts, "on", s.bg.String())
	}
	return strings.Join(parts, " ")
}
