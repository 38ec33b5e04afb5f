// Package colorsystem models terminal color capability and maps colors down to
// what a terminal can display.
package colorsystem

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/style"
)

// System is a terminal color capability level. Real levels are ordered:
// NoColor < Standard < EightBit < TrueColor.
type System uint8

const (
	// Auto asks for detection from the environment.
	Auto System = iota
	NoColor
	Standard
	EightBit
	TrueColor
	// Windows is the legacy console palette, rendered exactly like Standard.
	Windows
)

var systemNames = map[System]string{
	Auto:      "auto",
	NoColor:   "none",
	Standard:  "standard",
	EightBit:  "256",
	TrueColor: "truecolor",
	Windows:   "windows",
}

func (s System) String() string {
	if name, ok := systemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("System(%d)", uint8(s))
}

// Effective folds aliases into the level they render as.
func (s System) Effective() System {
	if s == Windows {
		return Standard
	}
	return s
}

// Parse resolves a color system name as used in flags and configuration.
func Parse(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "none", "no_color", "nocolor", "off":
		return NoColor, nil
	case "standard", "16", "8":
		return Standard, nil
	case "256", "eightbit", "8bit":
		return EightBit, nil
	case "truecolor", "24bit":
		return TrueColor, nil
	case "windows":
		return Windows, nil
	default:
		return Auto, fmt.Errorf("unknown color system %q", name)
	}
}

// LookupFunc reads an environment variable, reporting whether it is set.
type LookupFunc func(key string) (string, bool)

// Detect determines the color system from environment variables, in order:
// NO_COLOR, FORCE_COLOR, COLORTERM, TERM. With none of them conclusive the
// result is Standard.
func Detect(lookup LookupFunc) System {
	if lookup == nil {
		return Standard
	}
	if _, ok := lookup("NO_COLOR"); ok {
		return NoColor
	}
	if _, ok := lookup("FORCE_COLOR"); ok {
		return Standard
	}
	if colorterm, ok := lookup("COLORTERM"); ok {
		colorterm = strings.ToLower(colorterm)
		if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
			return TrueColor
		}
	}
	if term, ok := lookup("TERM"); ok && strings.Contains(strings.ToLower(term), "256color") {
		return EightBit
	}
	return Standard
}

// DetectFromEnv runs Detect against the process environment.
func DetectFromEnv() System {
	return Detect(os.LookupEnv)
}

// Resolve returns s, or the detected system when s is Auto.
func Resolve(s System, lookup LookupFunc) System {
	if s == Auto {
		return Detect(lookup)
	}
	return s
}

// Downsample converts c to a color the system can display. It never moves a
// color up: a named color stays named under TrueColor.
func Downsample(c style.Color, s System) style.Color {
	if !c.IsSet() {
		return c
	}
	switch s.Effective() {
	case TrueColor, Auto:
		return c
	case EightBit:
		return c.ToPalette()
	case Standard:
		return c.ToStandard()
	default:
		return style.Color{}
	}
}
