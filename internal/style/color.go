package style

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorKind identifies which variant a Color holds.
type ColorKind uint8

const (
	// KindNone is the zero value and means "no color set".
	KindNone ColorKind = iota
	// KindDefault is the terminal's default color (SGR 39/49).
	KindDefault
	// KindNamed is one of the 16 standard ANSI colors.
	KindNamed
	// KindPalette is an entry of the 256-color palette.
	KindPalette
	// KindRGB is a 24-bit color.
	KindRGB
)

// Color is an immutable terminal color. The zero value is "unset".
// Colors compare with == structurally.
type Color struct {
	kind    ColorKind
	index   uint8
	r, g, b uint8
}

// Named color values. Indices follow the ANSI order 0-15.
var (
	Default       = Color{kind: KindDefault}
	Black         = named(0)
	Red           = named(1)
	Green         = named(2)
	Yellow        = named(3)
	Blue          = named(4)
	Magenta       = named(5)
	Cyan          = named(6)
	White         = named(7)
	BrightBlack   = named(8)
	BrightRed     = named(9)
	BrightGreen   = named(10)
	BrightYellow  = named(11)
	BrightBlue    = named(12)
	BrightMagenta = named(13)
	BrightCyan    = named(14)
	BrightWhite   = named(15)
)

var colorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright_black", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
}

func named(i uint8) Color {
	return Color{kind: KindNamed, index: i}
}

// Named returns the standard color with ANSI index i (0-15). Indices above
// 15 are folded into range.
func Named(i uint8) Color {
	return named(i % 16)
}

// Palette returns the 256-color palette entry n.
func Palette(n uint8) Color {
	return Color{kind: KindPalette, index: n}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// Kind reports the color variant.
func (c Color) Kind() ColorKind { return c.kind }

// IsSet reports whether c holds a color.
func (c Color) IsSet() bool { return c.kind != KindNone }

// Index returns the ANSI index of a named color or the palette entry number.
// It is meaningless for other kinds.
func (c Color) Index() uint8 { return c.index }

// Triplet returns the raw components of an RGB color.
func (c Color) Triplet() (r, g, b uint8) { return c.r, c.g, c.b }

// ParseColor parses a color definition. Recognized forms are bare names
// ("red", "bright_red", "brightred", "grey"), "default", "#rgb", "#rrggbb",
// "rgb(r,g,b)" and "color(n)". Unknown input yields false.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, false
	}

	switch s {
	case "default":
		return Default, true
	case "grey", "gray", "bright_grey", "bright_gray":
		return BrightBlack, true
	}
	for i, name := range colorNames {
		if s == name || s == strings.ReplaceAll(name, "_", "") {
			return named(uint8(i)), true
		}
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}

	if inner, ok := cutCall(s, "rgb"); ok {
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return Color{}, false
		}
		var rgb [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return Color{}, false
			}
			rgb[i] = uint8(v)
		}
		return RGB(rgb[0], rgb[1], rgb[2]), true
	}

	if inner, ok := cutCall(s, "color"); ok {
		v, err := strconv.ParseUint(strings.TrimSpace(inner), 10, 8)
		if err != nil {
			return Color{}, false
		}
		return Palette(uint8(v)), true
	}

	return Color{}, false
}

func cutCall(s, name string) (string, bool) {
	rest, ok := strings.CutPrefix(s, name+"(")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, ")")
}

func parseHex(hex string) (Color, bool) {
	switch len(hex) {
	case 3:
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(string([]byte{hex[i], hex[i]}), 16, 8)
			if err != nil {
				return Color{}, false
			}
			rgb[i] = uint8(v)
		}
		return RGB(rgb[0], rgb[1], rgb[2]), true
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
	default:
		return Color{}, false
	}
}

// String returns the canonical definition of c, which ParseColor accepts.
func (c Color) String() string {
	switch c.kind {
	case KindDefault:
		return "default"
	case KindNamed:
		return colorNames[c.index%16]
	case KindPalette:
		return fmt.Sprintf("color(%d)", c.index)
	case KindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return ""
	}
}

// RGB returns the reference RGB value of c. Default and unset colors report
// black.
func (c Color) RGB() (r, g, b uint8) {
	switch c.kind {
	case KindNamed:
		t := standardPalette[c.index%16]
		return t.r, t.g, t.b
	case KindPalette:
		t := paletteRGB(c.index)
		return t.r, t.g, t.b
	case KindRGB:
		return c.r, c.g, c.b
	default:
		return 0, 0, 0
	}
}

// ToPalette maps c onto the 256-color palette. Default is kept, named colors
// map to their own index and RGB colors to the nearest palette entry.
func (c Color) ToPalette() Color {
	switch c.kind {
	case KindNamed:
		return Palette(c.index)
	case KindRGB:
		return Palette(nearest256(triplet{c.r, c.g, c.b}))
	default:
		return c
	}
}

// ToStandard maps c onto the 16 named colors.
func (c Color) ToStandard() Color {
	switch c.kind {
	case KindPalette:
		if c.index < 16 {
			return named(c.index)
		}
		return named(nearest16(paletteRGB(c.index)))
	case KindRGB:
		return named(nearest16(triplet{c.r, c.g, c.b}))
	default:
		return c
	}
}
