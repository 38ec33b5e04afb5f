package diff

import (
	"strings"
	"testing"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	expected := []byte("line1\nline2\nline3\n")
	actual := []byte("line1\nline2\nline3\n")

	result := GenerateUnifiedDiff(expected, actual, "expected", "actual")

	if result != "" {
		t.Errorf("Expected empty diff for identical content, got: %s", result)
	}
}

func TestGenerateUnifiedDiff_SingleLineChange(t *testing.T) {
	expected := []byte("line1\nline2\nline3\n")
	actual := []byte("line1\nmodified\nline3\n")

	result := GenerateUnifiedDiff(expected, actual, "expected", "actual")

	if !strings.Contains(result, "--- expected") || !strings.Contains(result, "+++ actual") {
		t.Error("Diff should contain unified diff headers")
	}
	if !strings.Contains(result, "-line2") {
		t.Error("Diff should show removed line with - prefix")
	}
	if !strings.Contains(result, "+modified") {
		t.Error("Diff should show added line with + prefix")
	}
}

func TestGenerateUnifiedDiff_EscapesSequences(t *testing.T) {
	expected := []byte("\x1b[1mbold\x1b[0m\n")
	actual := []byte("\x1b[1mbold\x1b[0m\x1b[0m\n")

	result := GenerateUnifiedDiff(expected, actual, "expected", "actual")

	if strings.Contains(result, "\x1b") {
		t.Error("Diff should not contain raw escape bytes")
	}
	if !strings.Contains(result, `+\x1b[1mbold\x1b[0m\x1b[0m`) {
		t.Errorf("Diff should show the escaped added line, got: %s", result)
	}
}

func TestGenerateUnifiedDiff_Truncation(t *testing.T) {
	var expectedLines []string
	var actualLines []string

	for i := 0; i < 11000; i++ {
		expectedLines = append(expectedLines, "expected line")
		if i%2 == 0 {
			actualLines = append(actualLines, "actual line")
		} else {
			actualLines = append(actualLines, "expected line")
		}
	}

	expected := []byte(strings.Join(expectedLines, "\n"))
	actual := []byte(strings.Join(actualLines, "\n"))

	result := GenerateUnifiedDiff(expected, actual, "expected", "actual")

	if !strings.Contains(result, "truncated") {
		t.Error("Large diff should be truncated with truncation message")
	}
	if lineCount := strings.Count(result, "\n"); lineCount > 10100 {
		t.Errorf("Truncated diff should not exceed ~10,000 lines, got %d", lineCount)
	}
}

func TestEscape(t *testing.T) {
	got := Escape("\x1b[31mred\x1b[0m\n\tok")
	want := `\x1b[31mred\x1b[0m` + "\n" + `\x09ok`
	if got != want {
		t.Errorf("Escape() = %q, want %q", got, want)
	}
}

func TestInline(t *testing.T) {
	if got := Inline("same", "same"); got != "" {
		t.Errorf("Expected empty inline diff, got %q", got)
	}

	got := Inline("\x1b[31mx\x1b[0m", "\x1b[32mx\x1b[0m")
	if want := `\x1b[3[-1-]{+2+}mx\x1b[0m`; got != want {
		t.Errorf("Inline() = %q, want %q", got, want)
	}
	if !strings.Contains(got, "[-") || !strings.Contains(got, "{+") {
		t.Errorf("Inline diff should mark deletions and insertions, got %q", got)
	}
	if strings.Contains(got, "\x1b") {
		t.Errorf("Inline diff should be escaped, got %q", got)
	}
}

func TestANSI(t *testing.T) {
	if got := ANSI("a", "a"); got != "" {
		t.Errorf("Expected no message for equal output, got %q", got)
	}
	if got := ANSI("a", "b"); !strings.HasPrefix(got, "output differs: ") {
		t.Errorf("Single line output should use the inline form, got %q", got)
	}
	if got := ANSI("a\nb\n", "a\nc\n"); !strings.Contains(got, "+c") {
		t.Errorf("Multi-line output should use the unified form, got %q", got)
	}
}
