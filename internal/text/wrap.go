package text

import (
	"unicode"

	"github.com/alexisbeaulieu97/prism/internal/segment"
)

// token is either a word, a maximal run of non-whitespace that may cross
// span boundaries, or a single whitespace character.
type token struct {
	pieces []segment.Span
	width  int
	space  bool
}

// isBreakSpace reports whether a line may break at r. No-break spaces are
// part of words.
func isBreakSpace(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f':
		return false
	}
	return unicode.IsSpace(r)
}

func tokenize(line []segment.Span) []token {
	var tokens []token
	var word token
	inWord := false

	flushWord := func() {
		if inWord {
			tokens = append(tokens, word)
			word = token{}
			inWord = false
		}
	}

	for _, span := range line {
		pieceStart := -1
		closePiece := func(end int) {
			if pieceStart >= 0 {
				word.pieces = append(word.pieces, segment.Span{Text: span.Text[pieceStart:end], Style: span.Style, Link: span.Link})
				pieceStart = -1
			}
		}

		for i, r := range span.Text {
			if isBreakSpace(r) {
				closePiece(i)
				flushWord()
				tokens = append(tokens, token{
					pieces: []segment.Span{{Text: string(r), Style: span.Style, Link: span.Link}},
					width:  segment.RuneWidth(r),
					space:  true,
				})
				continue
			}
			if pieceStart < 0 {
				pieceStart = i
			}
			inWord = true
			word.width += segment.RuneWidth(r)
		}
		closePiece(len(span.Text))
	}
	flushWord()
	return tokens
}

// wrapLine fills lines of at most width cells greedily. Whitespace at a
// break is dropped; a word wider than width gets a line of its own.
func wrapLine(line []segment.Span, width int) [][]segment.Span {
	width = max(width, 1)

	var out [][]segment.Span
	var cur []segment.Span
	var pending []token
	curWidth, pendingWidth := 0, 0
	hasWord, first := false, true

	for _, tok := range tokenize(line) {
		if tok.space {
			if !hasWord && !first {
				continue
			}
			pending = append(pending, tok)
			pendingWidth += tok.width
			continue
		}

		if hasWord && curWidth+pendingWidth+tok.width > width {
			out = append(out, segment.Coalesce(cur))
			cur, pending = nil, nil
			curWidth, pendingWidth = 0, 0
			hasWord, first = false, false
		}
		if !hasWord && pendingWidth+tok.width > width {
			pending, pendingWidth = nil, 0
		}

		for _, sp := range pending {
			cur = append(cur, sp.pieces...)
		}
		curWidth += pendingWidth
		pending, pendingWidth = nil, 0

		cur = append(cur, tok.pieces...)
		curWidth += tok.width
		hasWord = true
	}

	for _, sp := range pending {
		if curWidth+sp.width > width {
			break
		}
		cur = append(cur, sp.pieces...)
		curWidth += sp.width
	}
	return append(out, segment.Coalesce(cur))
}

// Wrap breaks every logical line at whitespace so no line is wider than
// width cells, except a single word that is wider on its own. Split spans
// keep their style on both sides. A width below one is treated as one.
// Tabs are expanded to TabSize stops first. A line holding only whitespace
// is cut to width.
func (t *Text) Wrap(width int) [][]segment.Span {
	var out [][]segment.Span
	for _, line := range t.expandedLines() {
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

// minimumWidth returns the width of the widest word.
func (t *Text) minimumWidth() int {
	widest := 0
	for _, line := range t.expandedLines() {
		for _, tok := range tokenize(line) {
			if !tok.space {
				widest = max(widest, tok.width)
			}
		}
	}
	return widest
}
