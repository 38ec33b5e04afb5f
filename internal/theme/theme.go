// Package theme maps semantic style names such as "error" or "muted" to
// concrete styles. Markup can use theme names as tags.
package theme

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Semantic slots every built-in theme defines.
const (
	Primary   = "primary"
	Secondary = "secondary"
	Success   = "success"
	Warning   = "warning"
	Error     = "error"
	Info      = "info"
	Muted     = "muted"
)

// Slots lists the semantic slots in display order.
var Slots = []string{Primary, Secondary, Success, Warning, Error, Info, Muted}

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_.-]*$`)

// ValidName reports whether name can be used as a theme style name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Theme is a named set of styles.
type Theme struct {
	name   string
	styles map[string]style.Style
}

// New returns a theme holding a copy of styles.
func New(name string, styles map[string]style.Style) *Theme {
	t := &Theme{name: name, styles: make(map[string]style.Style, len(styles))}
	maps.Copy(t.styles, styles)
	return t
}

func fromColors(name string, colors [7]style.Color) *Theme {
	styles := make(map[string]style.Style, len(Slots)+4)
	for i, slot := range Slots {
		styles[slot] = style.New().Foreground(colors[i])
	}
	styles["repr.number"] = style.New().Foreground(colors[5]).Bold()
	styles["repr.str"] = style.New().Foreground(colors[2])
	styles["repr.bool"] = style.New().Foreground(colors[1]).Italic()
	styles["repr.url"] = style.New().Foreground(colors[0]).Underline()
	styles["rule.line"] = style.New().Foreground(colors[6])
	styles["rule.title"] = style.New().Foreground(colors[0]).Bold()
	return New(name, styles)
}

// Default is the stock theme built from the 16 standard colors.
func Default() *Theme {
	return fromColors("default", [7]style.Color{
		style.BrightBlue, style.Magenta, style.BrightGreen, style.BrightYellow,
		style.BrightRed, style.BrightCyan, style.BrightBlack,
	})
}

// Monokai is a truecolor theme after the Monokai editor scheme.
func Monokai() *Theme {
	return fromColors("monokai", [7]style.Color{
		style.RGB(102, 217, 239), style.RGB(249, 38, 114), style.RGB(166, 226, 46),
		style.RGB(253, 151, 31), style.RGB(249, 38, 114), style.RGB(174, 129, 255),
		style.RGB(117, 113, 94),
	})
}

// NightOwl is a truecolor theme after the Night Owl editor scheme.
func NightOwl() *Theme {
	return fromColors("night_owl", [7]style.Color{
		style.RGB(130, 170, 255), style.RGB(199, 146, 234), style.RGB(173, 219, 103),
		style.RGB(255, 203, 107), style.RGB(239, 83, 80), style.RGB(128, 203, 196),
		style.RGB(99, 119, 119),
	})
}

var builtins = map[string]func() *Theme{
	"default":   Default,
	"monokai":   Monokai,
	"night_owl": NightOwl,
}

// Builtin returns a fresh copy of a built-in theme.
func Builtin(name string) (*Theme, error) {
	ctor, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return ctor(), nil
}

// BuiltinNames lists the built-in theme names.
func BuiltinNames() []string {
	return slices.Sorted(maps.Keys(builtins))
}

// Name returns the theme name.
func (t *Theme) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Lookup returns the style registered under name.
func (t *Theme) Lookup(name string) (style.Style, bool) {
	if t == nil {
		return style.Style{}, false
	}
	s, ok := t.styles[strings.ToLower(name)]
	return s, ok
}

// Style returns the style registered under name, or the empty style.
func (t *Theme) Style(name string) style.Style {
	s, _ := t.Lookup(name)
	return s
}

// Set registers st under name, replacing any previous style.
func (t *Theme) Set(name string, st style.Style) *Theme {
	if t.styles == nil {
		t.styles = make(map[string]style.Style)
	}
	t.styles[strings.ToLower(name)] = st
	return t
}

// Merge returns a new theme with the styles of t overridden by other.
func (t *Theme) Merge(other *Theme) *Theme {
	out := New(t.Name(), nil)
	if t != nil {
		maps.Copy(out.styles, t.styles)
	}
	if other != nil {
		maps.Copy(out.styles, other.styles)
	}
	return out
}

// Names lists the style names in t, sorted.
func (t *Theme) Names() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.styles))
}

// Manager holds the theme a long-running program renders with and lets it
// be swapped safely from other goroutines.
type Manager struct {
	mu    sync.RWMutex
	theme *Theme
}

// NewManager returns a manager starting with t, or Default when t is nil.
func NewManager(t *Theme) *Manager {
	if t == nil {
		t = Default()
	}
	return &Manager{theme: t}
}

// SetTheme replaces the active theme.
func (m *Manager) SetTheme(t *Theme) {
	if t == nil {
		t = Default()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = t
}

// Theme returns the active theme.
func (m *Manager) Theme() *Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}
