package theme

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/style"
)

// ToLipgloss converts st for use with lipgloss-based widgets. lipgloss has
// no hidden attribute, so AttrHidden is dropped.
func ToLipgloss(st style.Style) lipgloss.Style {
	out := lipgloss.NewStyle()
	if fg, ok := st.Fg(); ok {
		out = out.Foreground(lipglossColor(fg))
	}
	if bg, ok := st.Bg(); ok {
		out = out.Background(lipglossColor(bg))
	}
	return out.
		Bold(st.Has(style.AttrBold)).
		Faint(st.Has(style.AttrDim)).
		Italic(st.Has(style.AttrItalic)).
		Underline(st.Has(style.AttrUnderline)).
		Blink(st.Has(style.AttrBlink)).
		Reverse(st.Has(style.AttrReverse)).
		Strikethrough(st.Has(style.AttrStrikethrough))
}

func lipglossColor(c style.Color) lipgloss.TerminalColor {
	switch c.Kind() {
	case style.KindNamed, style.KindPalette:
		return lipgloss.Color(strconv.Itoa(int(c.Index())))
	case style.KindRGB:
		return lipgloss.Color(c.String())
	default:
		return lipgloss.NoColor{}
	}
}
