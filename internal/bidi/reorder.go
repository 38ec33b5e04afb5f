package bidi

import (
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/shaping"
)

// VisualOrder resolves one line of runes and returns, for every visual
// position from left to right, the logical index displayed there.
func VisualOrder(runes []rune, dir Direction) []int {
	p := newParagraph(runes, dir)
	p.resolve()
	return visualOrder(p.levels)
}

// Reorder shapes and reorders text for display. Every line is its own
// paragraph. Feed it logical text only: its output is not valid input.
func Reorder(text string, dir Direction) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		shaped := []rune(shaping.Reshape(line))
		visual := make([]rune, len(shaped))
		for k, idx := range VisualOrder(shaped, dir) {
			visual[k] = shaped[idx]
		}
		lines[i] = string(visual)
	}
	return strings.Join(lines, "\n")
}

// ReorderSpans lays out one line of styled spans for display. Shaping sees
// the concatenated text, so letters join across span boundaries. Every
// visual character keeps the style and link of the logical character it was
// produced from; neighbours that end up sharing both are merged.
func ReorderSpans(spans []segment.Span, dir Direction) []segment.Span {
	var logical []rune
	var owner []int
	for si, span := range spans {
		for _, r := range span.Text {
			logical = append(logical, r)
			owner = append(owner, si)
		}
	}
	if len(logical) == 0 {
		return nil
	}

	shaped, source := shaping.ReshapeIndexed(logical)
	order := VisualOrder(shaped, dir)

	out := make([]segment.Span, 0, len(spans))
	var b strings.Builder
	current := -1
	flush := func() {
		if current < 0 || b.Len() == 0 {
			return
		}
		src := spans[current]
		out = append(out, segment.Span{Text: b.String(), Style: src.Style, Link: src.Link})
		b.Reset()
	}
	for _, k := range order {
		si := owner[source[k]]
		if current < 0 || !sameLook(spans[current], spans[si]) {
			flush()
			current = si
		}
		b.WriteRune(shaped[k])
	}
	flush()
	return out
}

func sameLook(a, b segment.Span) bool {
	return a.Style == b.Style && a.Link == b.Link
}
