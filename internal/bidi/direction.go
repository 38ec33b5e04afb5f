// Package bidi lays out mixed left-to-right and right-to-left text for
// terminals, which draw cells strictly left to right.
package bidi

import (
	"fmt"
	"strings"

	xbidi "golang.org/x/text/unicode/bidi"
)

// Direction is a paragraph direction.
type Direction uint8

const (
	// Auto takes the direction of the first strong character.
	Auto Direction = iota
	LTR
	RTL
)

func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	default:
		return "auto"
	}
}

// ParseDirection resolves "auto", "ltr" or "rtl".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	default:
		return Auto, fmt.Errorf("unknown direction %q", s)
	}
}

func classOf(r rune) xbidi.Class {
	p, _ := xbidi.LookupRune(r)
	return p.Class()
}

// firstStrong returns the direction of the first strong character outside
// isolates, stopping at a paragraph separator. Auto means none was found.
func firstStrong(classes []xbidi.Class) Direction {
	depth := 0
	for _, c := range classes {
		switch c {
		case xbidi.LRI, xbidi.RLI, xbidi.FSI:
			depth++
		case xbidi.PDI:
			if depth > 0 {
				depth--
			}
		case xbidi.B:
			return Auto
		case xbidi.L:
			if depth == 0 {
				return LTR
			}
		case xbidi.R, xbidi.AL:
			if depth == 0 {
				return RTL
			}
		}
	}
	return Auto
}

func classesOf(text string) []xbidi.Class {
	classes := make([]xbidi.Class, 0, len(text))
	for _, r := range text {
		classes = append(classes, classOf(r))
	}
	return classes
}

// BaseDirection reports the direction of the first strong character of text,
// or Auto when text has none.
func BaseDirection(text string) Direction {
	return firstStrong(classesOf(text))
}

// IsRTL reports whether text reads right to left, judged by its first strong
// character.
func IsRTL(text string) bool {
	return BaseDirection(text) == RTL
}

// HasRTL reports whether text contains any right-to-left letter.
func HasRTL(text string) bool {
	for _, r := range text {
		switch classOf(r) {
		case xbidi.R, xbidi.AL:
			return true
		}
	}
	return false
}

// NeedsReorder reports whether text could display differently from its
// logical order in a left-to-right paragraph.
func NeedsReorder(text string) bool {
	for _, r := range text {
		switch classOf(r) {
		case xbidi.R, xbidi.AL, xbidi.AN, xbidi.RLE, xbidi.RLO, xbidi.RLI:
			return true
		}
	}
	return false
}
