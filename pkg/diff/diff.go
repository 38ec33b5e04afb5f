// Package diff renders readable differences between terminal outputs. Escape
// sequences are made visible first so a misplaced reset shows up as text.
package diff

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Escape makes control characters in s visible, e.g. ESC becomes `\x1b`.
// Line breaks are kept so line-based diffs stay aligned.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteByte('\n')
		case unicode.IsControl(r):
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GenerateUnifiedDiff compares expected and actual output line by line.
// Returns empty string if content is identical.
// Truncates diffs exceeding 10,000 lines with a truncation marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(Escape(string(expected))),
		B:        difflib.SplitLines(Escape(string(actual))),
		FromFile: expectedLabel,
		ToFile:   actualLabel,
		Context:  3,
	}
	result, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return fmt.Sprintf("diff failed: %v", err)
	}

	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}
	return result
}

// Inline returns a single-line character diff of the escaped strings, with
// deletions as [-x-] and insertions as {+x+}. Returns empty string if the
// strings are identical.
func Inline(expected, actual string) string {
	if expected == actual {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(Escape(expected), Escape(actual), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var buf strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			buf.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			buf.WriteString("[-")
			buf.WriteString(d.Text)
			buf.WriteString("-]")
		case diffmatchpatch.DiffInsert:
			buf.WriteString("{+")
			buf.WriteString(d.Text)
			buf.WriteString("+}")
		}
	}
	return buf.String()
}

// ANSI describes how actual differs from expected, suitable as a test
// failure message. Returns empty string if they are identical.
func ANSI(expected, actual string) string {
	if expected == actual {
		return ""
	}
	if !strings.Contains(expected, "\n") && !strings.Contains(actual, "\n") {
		return "output differs: " + Inline(expected, actual)
	}
	return GenerateUnifiedDiff([]byte(expected), []byte(actual), "expected", "actual")
}
