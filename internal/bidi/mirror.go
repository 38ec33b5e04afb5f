package bidi

var mirrors = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'«': '»', '»': '«',
	'‹': '›', '›': '‹',
	'⟨': '⟩', '⟩': '⟨',
	'⟪': '⟫', '⟫': '⟪',
}

// MirrorRune returns the paired glyph of a bracket or quote, or r itself.
func MirrorRune(r rune) rune {
	if m, ok := mirrors[r]; ok {
		return m
	}
	return r
}

// MirrorString swaps every paired glyph in s without reordering anything.
func MirrorString(s string) string {
	out := []rune(s)
	for i, r := range out {
		out[i] = MirrorRune(r)
	}
	return string(out)
}
