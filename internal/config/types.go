package config

import (
	"github.com/alexisbeaulieu97/prism/internal/bidi"
	"github.com/alexisbeaulieu97/prism/internal/colorsystem"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/text"
	"github.com/alexisbeaulieu97/prism/internal/theme"
)

// Config is the root of a prism configuration file.
type Config struct {
	Console     ConsoleConfig `yaml:"console"`
	ThemeConfig ThemeConfig   `yaml:"theme"`
	Log         LogConfig     `yaml:"log"`
}

// ConsoleConfig holds rendering defaults. Empty strings mean "auto" or the
// package default.
type ConsoleConfig struct {
	Width       int    `yaml:"width" validate:"gte=0,lte=10000"`
	Height      int    `yaml:"height" validate:"gte=0"`
	ColorSystem string `yaml:"color_system" validate:"omitempty,color_system"`
	Direction   string `yaml:"direction" validate:"omitempty,direction"`
	Markup      *bool  `yaml:"markup"`
	Justify     string `yaml:"justify" validate:"omitempty,oneof=default left center right"`
	Overflow    string `yaml:"overflow" validate:"omitempty,oneof=wrap visible"`
}

// ThemeConfig selects a built-in theme and overrides or adds named styles.
type ThemeConfig struct {
	Base   string            `yaml:"base" validate:"omitempty,theme_base"`
	Styles map[string]string `yaml:"styles" validate:"dive,keys,style_name,endkeys,style_def"`
}

// LogConfig configures diagnostics written to stderr.
type LogConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	markup := true
	return &Config{
		Console:     ConsoleConfig{Markup: &markup},
		ThemeConfig: ThemeConfig{Base: "default"},
		Log:         LogConfig{Level: "warn", HumanReadable: true},
	}
}

// ColorSystemValue returns the configured color system, Auto when unset.
func (c ConsoleConfig) ColorSystemValue() colorsystem.System {
	s, _ := colorsystem.Parse(c.ColorSystem)
	return s
}

// DirectionValue returns the configured paragraph direction.
func (c ConsoleConfig) DirectionValue() bidi.Direction {
	d, _ := bidi.ParseDirection(c.Direction)
	return d
}

// JustifyValue returns the configured justification.
func (c ConsoleConfig) JustifyValue() text.Justify {
	j, _ := text.ParseJustify(c.Justify)
	return j
}

// OverflowValue returns the configured overflow mode.
func (c ConsoleConfig) OverflowValue() text.Overflow {
	o, _ := text.ParseOverflow(c.Overflow)
	return o
}

// MarkupEnabled reports whether markup parsing is on. It defaults to true.
func (c ConsoleConfig) MarkupEnabled() bool {
	return c.Markup == nil || *c.Markup
}

// Theme builds the configured theme: the base palette with every style
// override applied on top.
func (c *Config) Theme() *theme.Theme {
	base := "default"
	if c != nil && c.ThemeConfig.Base != "" {
		base = c.ThemeConfig.Base
	}
	th, err := theme.Builtin(base)
	if err != nil {
		th = theme.Default()
	}
	if c == nil {
		return th
	}
	for name, def := range c.ThemeConfig.Styles {
		th.Set(name, style.Parse(def))
	}
	return th
}
