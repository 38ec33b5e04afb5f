package segment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/style"
)

func TestCellWidth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  int
	}{
		{name: "ascii", input: "hello", want: 5},
		{name: "empty", input: "", want: 0},
		{name: "cjk is double width", input: "你好", want: 4},
		{name: "fullwidth latin", input: "ＡＢ", want: 4},
		{name: "combining mark is zero width", input: "e\u0301", want: 1},
		{name: "ambiguous counts as wide", input: "§", want: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, CellWidth(tc.input))
		})
	}
}

func TestCoalesce(t *testing.T) {
	t.Parallel()

	bold := style.New().Bold()
	spans := []Span{
		{Text: "a", Style: bold},
		{Text: "b", Style: bold},
		{Text: ""},
		{Text: "c"},
		{Text: "d", Link: "https://example.com"},
	}

	require.Equal(t, []Span{
		{Text: "ab", Style: bold},
		{Text: "c"},
		{Text: "d", Link: "https://example.com"},
	}, Coalesce(spans))
	require.Equal(t, "a", spans[0].Text, "input untouched")
}

func TestSegmentPlainText(t *testing.T) {
	t.Parallel()

	segs := []Segment{
		{Spans: []Span{{Text: "one"}, {Text: " two"}}, Newline: true},
		{Spans: []Span{{Text: "three"}}},
	}
	require.Equal(t, "one two\nthree", PlainText(segs))
	require.Equal(t, 7, segs[0].Width())
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{""}, SplitLines(""))
	require.Equal(t, []string{"a", "b", ""}, SplitLines("a\r\nb\n"))
}

func TestSpanStyled(t *testing.T) {
	t.Parallel()

	require.False(t, Span{Text: "x"}.Styled())
	require.True(t, Span{Text: "x", Style: style.New().Dim()}.Styled())
	require.True(t, Span{Text: "x", Link: "https://example.com"}.Styled())
}
