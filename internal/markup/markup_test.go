package markup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/theme"
)

var (
	bold = style.New().Bold()
	red  = style.New().Foreground(style.Red)
	blue = style.New().Foreground(style.Blue)
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []segment.Span
	}{
		{
			name:  "bold then plain",
			input: "[bold]Bold[/] plain",
			want:  []segment.Span{{Text: "Bold", Style: bold}, {Text: " plain"}},
		},
		{
			name:  "space between tags survives",
			input: "[red]Red[/] [blue]Blue[/]",
			want:  []segment.Span{{Text: "Red", Style: red}, {Text: " "}, {Text: "Blue", Style: blue}},
		},
		{
			name:  "nested tags combine",
			input: "[bold][red]x[/]y[/]z",
			want:  []segment.Span{{Text: "x", Style: bold.Combine(red)}, {Text: "y", Style: bold}, {Text: "z"}},
		},
		{
			name:  "named close tag pops",
			input: "[bold]a[/bold]b",
			want:  []segment.Span{{Text: "a", Style: bold}, {Text: "b"}},
		},
		{
			name:  "close tag name is not checked",
			input: "[bold]a[/italic]b",
			want:  []segment.Span{{Text: "a", Style: bold}, {Text: "b"}},
		},
		{
			name:  "background",
			input: "[bold red on blue]x",
			want:  []segment.Span{{Text: "x", Style: bold.Foreground(style.Red).Background(style.Blue)}},
		},
		{
			name:  "link",
			input: "see [link=https://example.com]docs[/]",
			want:  []segment.Span{{Text: "see "}, {Text: "docs", Link: "https://example.com"}},
		},
		{
			name:  "link with style",
			input: "[bold link=https://example.com]docs",
			want:  []segment.Span{{Text: "docs", Style: bold, Link: "https://example.com"}},
		},
		{
			name:  "negation is accepted without effect",
			input: "[bold][not bold]x",
			want:  []segment.Span{{Text: "x", Style: bold}},
		},
		{
			name:  "bracket inside tag content is literal",
			input: "[a [bold]x[/]",
			want:  []segment.Span{{Text: "[a "}, {Text: "x", Style: bold}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Parse(tc.input).Spans())
		})
	}
}

func TestInvalidTagsAreLiteral(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"[1, 2, 3]",
		"[Unknown]",
		"[]",
		"[bold on]",
		"[link=]",
		"x = list[0",
		"a ] b",
	} {
		txt := Parse(input)
		require.Equal(t, input, txt.PlainText(), input)
		for _, span := range txt.Spans() {
			require.True(t, span.Style.IsEmpty(), input)
		}
	}
}

func TestTagLookingDataIsConsumed(t *testing.T) {
	t.Parallel()

	// Tags are case-insensitive, so debug output such as "[Red]" reads as a
	// style. Raw printing is the way around it.
	require.Equal(t, "x", Parse("[Red]x").PlainText())
}

func TestPopOnEmptyStack(t *testing.T) {
	t.Parallel()

	require.Equal(t, []segment.Span{{Text: "ab"}}, Parse("a[/]b").Spans())
}

func TestEscape(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[escaped]", Parse("[[escaped]]").PlainText())

	for _, s := range []string{"[bold]", "a]", "[", "]]", "[]", "list[0] = [1, 2]"} {
		require.Equal(t, s, Parse(Escape(s)).PlainText(), s)
	}
	require.Equal(t, "[[bold]]", Escape("[bold]"))
}

func TestThemeNames(t *testing.T) {
	t.Parallel()

	p := Parser{Theme: theme.Default()}
	spans := p.Parse("[error]boom[/] [bold muted]quiet").Spans()
	require.Equal(t, theme.Default().Style(theme.Error), spans[0].Style)
	require.Equal(t, theme.Default().Style(theme.Muted).Combine(bold), spans[2].Style)

	require.Equal(t, "[error]boom", Parse("[error]boom").PlainText(), "unknown without a theme")
}

func TestMultilineMarkup(t *testing.T) {
	t.Parallel()

	txt := Parse("[bold]one\ntwo[/]\nthree")
	lines := txt.Lines()
	require.Len(t, lines, 3)
	require.Equal(t, []segment.Span{{Text: "two", Style: bold}}, lines[1])
	require.Equal(t, []segment.Span{{Text: "three"}}, lines[2])
}

func TestStrip(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Hello world", Strip("[bold]Hello[/] [red]world[/]"))
}
