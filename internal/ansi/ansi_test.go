package ansi

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/colorsystem"
	"github.com/alexisbeaulieu97/prism/internal/markup"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/pkg/diff"
)

func requireANSI(t *testing.T, want, got string) {
	t.Helper()
	require.Equal(t, want, got, diff.ANSI(want, got))
}

func span(text string, st style.Style) segment.Span {
	return segment.Span{Text: text, Style: st}
}

func TestEncodeSpan(t *testing.T) {
	t.Parallel()

	orange := style.RGB(255, 128, 0)

	cases := []struct {
		name   string
		system colorsystem.System
		span   segment.Span
		want   string
	}{
		{name: "plain", system: colorsystem.TrueColor, span: span("test", style.New()), want: "test"},
		{name: "bold", system: colorsystem.TrueColor, span: span("test", style.New().Bold()), want: "\x1b[1mtest\x1b[0m"},
		{name: "named under truecolor", system: colorsystem.TrueColor, span: span("x", style.New().Foreground(style.Red)), want: "\x1b[31mx\x1b[0m"},
		{name: "named under standard", system: colorsystem.Standard, span: span("x", style.New().Foreground(style.Red)), want: "\x1b[31mx\x1b[0m"},
		{name: "named under 256", system: colorsystem.EightBit, span: span("x", style.New().Foreground(style.Red)), want: "\x1b[38;5;1mx\x1b[0m"},
		{name: "bright named", system: colorsystem.TrueColor, span: span("x", style.New().Foreground(style.BrightGreen)), want: "\x1b[92mx\x1b[0m"},
		{name: "rgb under truecolor", system: colorsystem.TrueColor, span: span("x", style.New().Foreground(orange)), want: "\x1b[38;2;255;128;0mx\x1b[0m"},
		{name: "rgb under 256", system: colorsystem.EightBit, span: span("x", style.New().Foreground(orange)), want: "\x1b[38;5;208mx\x1b[0m"},
		{name: "rgb under standard", system: colorsystem.Standard, span: span("x", style.New().Foreground(orange)), want: "\x1b[33mx\x1b[0m"},
		{name: "rgb under windows", system: colorsystem.Windows, span: span("x", style.New().Foreground(orange)), want: "\x1b[33mx\x1b[0m"},
		{name: "rgb without downsampling", system: colorsystem.Auto, span: span("x", style.New().Foreground(orange)), want: "\x1b[38;2;255;128;0mx\x1b[0m"},
		{name: "palette", system: colorsystem.TrueColor, span: span("x", style.New().Foreground(style.Palette(200))), want: "\x1b[38;5;200mx\x1b[0m"},
		{name: "palette under standard", system: colorsystem.Standard, span: span("x", style.New().Foreground(style.Palette(196))), want: "\x1b[91mx\x1b[0m"},
		{name: "background", system: colorsystem.TrueColor, span: span("x", style.New().Background(style.Blue)), want: "\x1b[44mx\x1b[0m"},
		{name: "bright background", system: colorsystem.TrueColor, span: span("x", style.New().Background(style.BrightRed)), want: "\x1b[101mx\x1b[0m"},
		{name: "rgb background", system: colorsystem.TrueColor, span: span("x", style.New().Background(style.RGB(1, 2, 3))), want: "\x1b[48;2;1;2;3mx\x1b[0m"},
		{name: "palette background", system: colorsystem.EightBit, span: span("x", style.New().Background(style.Blue)), want: "\x1b[48;5;4mx\x1b[0m"},
		{name: "default colors", system: colorsystem.TrueColor, span: span("x", style.New().Foreground(style.Default).Background(style.Default)), want: "\x1b[39m\x1b[49mx\x1b[0m"},
		{name: "attributes then fg then bg", system: colorsystem.TrueColor, span: span("x", style.New().Foreground(style.Red).Background(style.Blue).Bold()), want: "\x1b[1m\x1b[31m\x1b[44mx\x1b[0m"},
		{
			name:   "every attribute in order",
			system: colorsystem.TrueColor,
			span:   span("x", style.New().Strikethrough().Hidden().Reverse().Blink().Underline().Italic().Dim().Bold()),
			want:   "\x1b[1m\x1b[2m\x1b[3m\x1b[4m\x1b[5m\x1b[7m\x1b[8m\x1b[9mx\x1b[0m",
		},
		{name: "no color drops styling", system: colorsystem.NoColor, span: span("test", style.New().Bold().Foreground(orange)), want: "test"},
		{name: "empty text", system: colorsystem.TrueColor, span: span("", style.New().Bold()), want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			requireANSI(t, tc.want, New(tc.system).Span(tc.span))
		})
	}
}

func TestEncodeLinks(t *testing.T) {
	t.Parallel()

	enc := New(colorsystem.TrueColor)

	linked := segment.Span{Text: "docs", Style: style.New().Bold(), Link: "https://example.com"}
	requireANSI(t, "\x1b]8;;https://example.com\x1b\\\x1b[1mdocs\x1b[0m\x1b]8;;\x1b\\", enc.Span(linked))

	bare := segment.Span{Text: "docs", Link: "https://example.com"}
	requireANSI(t, "\x1b]8;;https://example.com\x1b\\docs\x1b]8;;\x1b\\", enc.Span(bare))

	requireANSI(t, "docs", New(colorsystem.NoColor).Span(linked))
}

func TestEncodeMarkup(t *testing.T) {
	t.Parallel()

	enc := New(colorsystem.TrueColor)
	ctx := render.Context{Width: 80}

	cases := []struct {
		markup string
		want   string
	}{
		{markup: "[bold]Bold[/] plain", want: "\x1b[1mBold\x1b[0m plain"},
		{markup: "[red]Red[/] [blue]Blue[/]", want: "\x1b[31mRed\x1b[0m \x1b[34mBlue\x1b[0m"},
		{markup: "[bold][red]both[/][/]", want: "\x1b[1m\x1b[31mboth\x1b[0m"},
		{markup: "plain only", want: "plain only"},
		{markup: "[[literal]]", want: "[literal]"},
		{markup: "[bold]one\ntwo", want: "\x1b[1mone\x1b[0m\n\x1b[1mtwo\x1b[0m"},
	}

	for _, tc := range cases {
		t.Run(tc.markup, func(t *testing.T) {
			t.Parallel()
			got := enc.Segments(markup.Parse(tc.markup).Render(ctx))
			requireANSI(t, tc.want, got)
		})
	}
}

func TestOneResetPerStyledSpan(t *testing.T) {
	t.Parallel()

	got := New(colorsystem.TrueColor).Segments(markup.Parse("[bold]Bold[/] plain").Render(render.Context{Width: 80}))
	require.Equal(t, 1, strings.Count(got, csiReset))
	require.True(t, strings.HasSuffix(got, "plain"), "no escape bytes after unstyled text")
}

func TestEncodeSegments(t *testing.T) {
	t.Parallel()

	segs := []segment.Segment{
		{Spans: []segment.Span{span("a", style.New().Italic())}, Newline: true},
		{Spans: []segment.Span{span("b", style.New())}},
	}

	var buf bytes.Buffer
	require.NoError(t, New(colorsystem.Standard).EncodeSegments(&buf, segs))
	requireANSI(t, "\x1b[3ma\x1b[0m\nb", buf.String())
	requireANSI(t, buf.String(), New(colorsystem.Standard).Segments(segs))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestEncodeSegmentsReportsWriteErrors(t *testing.T) {
	t.Parallel()

	segs := []segment.Segment{{Spans: []segment.Span{span("x", style.New())}}}
	err := New(colorsystem.TrueColor).EncodeSegments(failingWriter{}, segs)
	require.EqualError(t, err, "sink closed")
}

func TestStrip(t *testing.T) {
	t.Parallel()

	linked := segment.Span{Text: "docs", Style: style.New().Bold().Foreground(style.RGB(1, 2, 3)), Link: "https://example.com"}
	encoded := New(colorsystem.TrueColor).Span(linked)

	require.Equal(t, "docs", Strip(encoded))
	require.Equal(t, 4, StringWidth(encoded))
	require.Equal(t, "plain", Strip("plain"))
}

func TestWriteInt(t *testing.T) {
	t.Parallel()

	for _, n := range []struct {
		in   int
		want string
	}{{0, "0"}, {7, "7"}, {10, "10"}, {99, "99"}, {100, "100"}, {255, "255"}, {4096, "4096"}, {-3, "-3"}} {
		var b strings.Builder
		writeInt(&b, n.in)
		require.Equal(t, n.want, b.String())
	}
}
