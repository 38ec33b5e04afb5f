package style

import "strings"

var attrKeywords = map[string]Attr{
	"bold":          AttrBold,
	"b":             AttrBold,
	"dim":           AttrDim,
	"italic":        AttrItalic,
	"i":             AttrItalic,
	"underline":     AttrUnderline,
	"u":             AttrUnderline,
	"blink":         AttrBlink,
	"reverse":       AttrReverse,
	"hidden":        AttrHidden,
	"strike":        AttrStrikethrough,
	"strikethrough": AttrStrikethrough,
	"s":             AttrStrikethrough,
}

// LookupAttr resolves an attribute keyword such as "bold" or "u".
func LookupAttr(word string) (Attr, bool) {
	a, ok := attrKeywords[strings.ToLower(word)]
	return a, ok
}

// ParseStyle parses a whitespace separated style definition such as
// "bold red on blue". It reports false when any token is not an attribute
// keyword, a color, "on <color>" or "not <attribute>". An empty definition is
// not a style.
//
// "not <attribute>" is accepted but has no effect: attributes only ever
// accumulate, so there is nothing to switch off.
func ParseStyle(def string) (Style, bool) {
	tokens := strings.Fields(def)
	if len(tokens) == 0 {
		return Style{}, false
	}

	var s Style
	for i := 0; i < len(tokens); i++ {
		word := strings.ToLower(tokens[i])
		switch word {
		case "on":
			if i+1 >= len(tokens) {
				return Style{}, false
			}
			c, ok := ParseColor(tokens[i+1])
			if !ok {
				return Style{}, false
			}
			s.bg = c
			i++
			continue
		case "not":
			if i+1 >= len(tokens) {
				return Style{}, false
			}
			if _, ok := LookupAttr(tokens[i+1]); !ok {
				return Style{}, false
			}
			i++
			continue
		}

		if a, ok := attrKeywords[word]; ok {
			s.attrs |= a
			continue
		}
		if c, ok := ParseColor(word); ok {
			s.fg = c
			continue
		}
		return Style{}, false
	}
	return s, true
}

// Parse is the lenient form of ParseStyle: unknown tokens are skipped.
func Parse(def string) Style {
	var s Style
	tokens := strings.Fields(def)
	for i := 0; i < len(tokens); i++ {
		word := strings.ToLower(tokens[i])
		switch {
		case word == "on" && i+1 < len(tokens):
			if c, ok := ParseColor(tokens[i+1]); ok {
				s.bg = c
			}
			i++
		case word == "not" && i+1 < len(tokens):
			i++
		default:
			if a, ok := attrKeywords[word]; ok {
				s.attrs |= a
			} else if c, ok := ParseColor(word); ok {
				s.fg = c
			}
		}
	}
	return s
}
