package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/colorsystem"
	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/console"
	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/theme"
)

// appContext carries what every command renders with.
type appContext struct {
	cfg     *config.Config
	log     *logger.Logger
	theme   *theme.Theme
	console *console.Console
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, newCommandError("load configuration", flags.configPath, err, "Check the file's keys and values; see 'prism --help' for accepted values.")
		}
		cfg = loaded
	}

	applyFlagOverrides(cmd, flags, cfg)
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, newCommandError("apply flags", "validating options", err, "Run 'prism --help' to list accepted values.")
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.HumanReadable,
		NoColor:       cfg.Console.ColorSystemValue() == colorsystem.NoColor,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError("configure logging", level, err, "Use one of trace, debug, info, warn, error or disabled.")
	}

	th := cfg.Theme()
	con := console.New(console.Options{
		Writer:        cmd.OutOrStdout(),
		Width:         cfg.Console.Width,
		Height:        cfg.Console.Height,
		ColorSystem:   cfg.Console.ColorSystemValue(),
		DisableMarkup: !cfg.Console.MarkupEnabled(),
		Direction:     cfg.Console.DirectionValue(),
		Justify:       cfg.Console.JustifyValue(),
		Overflow:      cfg.Console.OverflowValue(),
		Theme:         th,
		Logger:        log,
	})

	return &appContext{cfg: cfg, log: log, theme: th, console: con}, nil
}

// applyFlagOverrides copies explicitly set flags over file values.
func applyFlagOverrides(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("width") {
		cfg.Console.Width = flags.width
	}
	if changed("height") {
		cfg.Console.Height = flags.height
	}
	if changed("color-system") {
		cfg.Console.ColorSystem = flags.colorSystem
	}
	if changed("direction") {
		cfg.Console.Direction = flags.direction
	}
	if changed("justify") {
		cfg.Console.Justify = flags.justify
	}
	if changed("overflow") {
		cfg.Console.Overflow = flags.overflow
	}
	if changed("theme") {
		cfg.ThemeConfig.Base = flags.theme
	}
	if changed("no-markup") {
		markup := !flags.noMarkup
		cfg.Console.Markup = &markup
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
}
