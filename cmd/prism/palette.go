package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/text"
)

func newPaletteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Print the 16 standard colors and the 256-color palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			return app.console.PrintRenderable(paletteText())
		},
	}
}

// paletteText lays out one swatch per palette entry, labelled with its index.
// The 16 standard colors come first, set apart by a blank line.
func paletteText() *text.Text {
	t := text.New()
	t.Overflow = text.OverflowVisible

	for i := 0; i < 16; i++ {
		if i == 8 {
			t.Append("\n", style.Style{})
		}
		swatch(t, style.Named(uint8(i)), i)
	}
	for i := 16; i < 256; i++ {
		switch {
		case i == 16:
			t.Append("\n\n", style.Style{})
		case i == 232 || (i-16)%36 == 0:
			t.Append("\n", style.Style{})
		}
		swatch(t, style.Palette(uint8(i)), i)
	}
	return t
}

func swatch(t *text.Text, bg style.Color, index int) {
	t.Append(fmt.Sprintf("%4d", index), style.New().Background(bg).Foreground(contrast(bg)))
}

// contrast picks black or white text for legibility on bg.
func contrast(bg style.Color) style.Color {
	r, g, b := bg.RGB()
	luma := 299*int(r) + 587*int(g) + 114*int(b)
	if luma > 128*1000 {
		return style.Black
	}
	return style.BrightWhite
}
