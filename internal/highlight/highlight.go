// Package highlight styles the parts of a text that match regular
// expressions.
package highlight

import (
	"fmt"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/text"
	"github.com/alexisbeaulieu97/prism/internal/theme"
)

// Highlighter styles a text in place.
type Highlighter interface {
	Highlight(t *text.Text) *text.Text
}

type rule struct {
	pattern *regexp.Regexp
	style   style.Style
}

// Regex applies ordered pattern rules. Where matches overlap the one that
// starts first wins, and among equal starts the earlier rule.
type Regex struct {
	rules []rule
}

// NewRegex returns a highlighter without rules.
func NewRegex() *Regex {
	return &Regex{}
}

// Add compiles pattern and appends it as a rule.
func (h *Regex) Add(pattern string, st style.Style) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("compile highlight pattern %q: %w", pattern, err)
	}
	h.rules = append(h.rules, rule{pattern: re, style: st})
	return nil
}

// MustAdd is Add for patterns known at compile time.
func (h *Regex) MustAdd(pattern string, st style.Style) *Regex {
	if err := h.Add(pattern, st); err != nil {
		panic(err)
	}
	return h
}

type match struct {
	start, end int
	style      style.Style
}

// Highlight stylizes every accepted match in t and returns t.
func (h *Regex) Highlight(t *text.Text) *text.Text {
	if t == nil || len(h.rules) == 0 {
		return t
	}

	plain := t.PlainText()
	var matches []match
	for _, r := range h.rules {
		for _, loc := range r.pattern.FindAllStringIndex(plain, -1) {
			if loc[0] == loc[1] {
				continue
			}
			matches = append(matches, match{start: loc[0], end: loc[1], style: r.style})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	lastEnd := 0
	for _, m := range matches {
		if m.start < lastEnd {
			continue
		}
		start := utf8.RuneCountInString(plain[:m.start])
		end := start + utf8.RuneCountInString(plain[m.start:m.end])
		t.Stylize(m.style, start, end)
		lastEnd = m.end
	}
	return t
}

// Built-in patterns.
const (
	URLPattern    = `https?://[^\s\]\)"'>]+`
	StringPattern = `"[^"\n]*"|'[^'\n]*'`
	BoolPattern   = `\b(?:true|false|nil|null|None|True|False)\b`
	NumberPattern = `-?\b\d+(?:\.\d+)?\b`
	EmailPattern  = `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`
)

// URLs highlights http and https URLs.
func URLs(st style.Style) *Regex {
	return NewRegex().MustAdd(URLPattern, st)
}

// Numbers highlights integers and decimals.
func Numbers(st style.Style) *Regex {
	return NewRegex().MustAdd(NumberPattern, st)
}

// Emails highlights e-mail addresses.
func Emails(st style.Style) *Regex {
	return NewRegex().MustAdd(EmailPattern, st)
}

// Repr highlights values as they appear in debug output, using the theme's
// repr.* styles. A nil theme means theme.Default.
func Repr(th *theme.Theme) *Regex {
	if th == nil {
		th = theme.Default()
	}
	return NewRegex().
		MustAdd(URLPattern, th.Style("repr.url")).
		MustAdd(StringPattern, th.Style("repr.str")).
		MustAdd(BoolPattern, th.Style("repr.bool")).
		MustAdd(NumberPattern, th.Style("repr.number"))
}
