package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/colorsystem"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/text"
	"github.com/alexisbeaulieu97/prism/internal/theme"
)

var detectEnvVars = []string{"NO_COLOR", "FORCE_COLOR", "COLORTERM", "TERM", "COLUMNS"}

func newDetectCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Show the terminal capabilities prism would render for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, flags)
		},
	}
}

func runDetect(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}
	con := app.console

	label := app.theme.Style(theme.Primary)
	muted := app.theme.Style(theme.Muted)

	t := text.New()
	t.Overflow = text.OverflowVisible
	row := func(key, value string, keyStyle, valueStyle style.Style) {
		if t.Len() > 0 {
			t.Append("\n", style.Style{})
		}
		t.Append(fmt.Sprintf("%-13s", key), keyStyle)
		t.Append(" "+value, valueStyle)
	}

	row("color system", con.ColorSystem().String(), label, style.Style{})
	row("detected", colorsystem.DetectFromEnv().String(), label, style.Style{})
	row("width", fmt.Sprint(con.Width()), label, style.Style{})
	row("direction", app.cfg.Console.DirectionValue().String(), label, style.Style{})
	row("theme", app.theme.Name(), label, style.Style{})
	for _, name := range detectEnvVars {
		value, ok := os.LookupEnv(name)
		if !ok {
			value = "(unset)"
		}
		row(name, value, muted, muted)
	}

	return con.PrintRenderable(t)
}
