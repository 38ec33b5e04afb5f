// Package console binds the rendering pipeline to an output sink. A Console
// is an explicit handle: there is no package level default.
package console

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/prism/internal/ansi"
	"github.com/alexisbeaulieu97/prism/internal/bidi"
	"github.com/alexisbeaulieu97/prism/internal/colorsystem"
	"github.com/alexisbeaulieu97/prism/internal/highlight"
	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/markup"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/text"
	"github.com/alexisbeaulieu97/prism/internal/theme"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// Options configures a Console. The zero value writes to stdout with the
// detected width and color system.
type Options struct {
	Writer io.Writer
	// Width in cells; zero detects it from the terminal or $COLUMNS.
	Width int
	// Height limits lines per print; zero means unbounded.
	Height      int
	ColorSystem colorsystem.System
	// Env replaces os.LookupEnv for detection.
	Env           colorsystem.LookupFunc
	DisableMarkup bool
	Direction     bidi.Direction
	Justify       text.Justify
	Overflow      text.Overflow
	Theme         *theme.Theme
	// Themes shares a theme manager with the caller so the theme can be
	// swapped while the console is in use. It takes precedence over Theme.
	Themes *theme.Manager
	// Highlighter styles non-string values passed to Print.
	Highlighter highlight.Highlighter
	Logger      *logger.Logger
}

// Console renders values and writes them as escape sequences.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	width   int
	height  int
	system  colorsystem.System
	encoder ansi.Encoder
	markup  bool

	direction   bidi.Direction
	justify     text.Justify
	overflow    text.Overflow
	themes      *theme.Manager
	highlighter highlight.Highlighter
	log         *logger.Logger
}

var (
	termIsTerminal = term.IsTerminal
	termGetSize    = term.GetSize
)

// New returns a console for opts.
func New(opts Options) *Console {
	out := opts.Writer
	if out == nil {
		out = os.Stdout
	}
	env := opts.Env
	if env == nil {
		env = os.LookupEnv
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.NewManager(opts.Theme)
	}

	width := opts.Width
	if width <= 0 {
		width = detectWidth(out, env)
	}
	system := colorsystem.Resolve(opts.ColorSystem, env)

	c := &Console{
		out:         out,
		width:       width,
		height:      opts.Height,
		system:      system,
		encoder:     ansi.New(system),
		markup:      !opts.DisableMarkup,
		direction:   opts.Direction,
		justify:     opts.Justify,
		overflow:    opts.Overflow,
		themes:      themes,
		highlighter: opts.Highlighter,
		log:         opts.Logger.Component("console"),
	}
	c.log.Debug("console ready",
		"width", width,
		"color_system", system.String(),
		"direction", opts.Direction.String(),
		"markup", c.markup,
	)
	return c
}

// NewCapture returns a console writing into the returned buffer, for tests
// and for callers that post-process output.
func NewCapture(opts Options) (*Console, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	opts.Writer = buf
	return New(opts), buf
}

func detectWidth(out io.Writer, env colorsystem.LookupFunc) int {
	if f, ok := out.(interface{ Fd() uintptr }); ok {
		fd := int(f.Fd())
		if termIsTerminal(fd) {
			if w, _, err := termGetSize(fd); err == nil && w > 0 {
				return w
			}
		}
	}
	if cols, ok := env("COLUMNS"); ok {
		if w, err := strconv.Atoi(strings.TrimSpace(cols)); err == nil && w > 0 {
			return w
		}
	}
	return render.DefaultWidth
}

// Width returns the render width in cells.
func (c *Console) Width() int { return c.width }

// Height returns the line limit, zero when unbounded.
func (c *Console) Height() int { return c.height }

// ColorSystem returns the resolved color system. It is never Auto.
func (c *Console) ColorSystem() colorsystem.System { return c.system }

// Theme returns the theme markup tags resolve against.
func (c *Console) Theme() *theme.Theme { return c.themes.Theme() }

// SetTheme replaces the theme for later prints. A nil theme restores the
// default.
func (c *Console) SetTheme(t *theme.Theme) {
	c.themes.SetTheme(t)
	c.log.Debug("theme changed", "theme", c.Theme().Name())
}

// Context returns the render context prints use.
func (c *Console) Context() render.Context {
	return render.Context{Width: c.width, Height: c.height, Direction: c.direction}
}

// Text builds the text Print would render for values. Strings are parsed as
// markup unless markup is disabled; *text.Text values are used as is; other
// values are formatted with fmt and highlighted. Values are separated by a
// space.
func (c *Console) Text(values ...any) *text.Text {
	return c.build(c.markup, values)
}

func (c *Console) build(parse bool, values []any) *text.Text {
	out := text.New()
	out.Justify = c.justify
	out.Overflow = c.overflow

	for i, v := range values {
		if i > 0 {
			out.Append(" ", style.Style{})
		}
		switch v := v.(type) {
		case string:
			if parse {
				out.AppendText(markup.Parser{Theme: c.Theme()}.Parse(v))
			} else {
				out.AppendText(text.Plain(v))
			}
		case *text.Text:
			out.AppendText(v)
		default:
			t := text.Plain(fmt.Sprint(v))
			if c.highlighter != nil {
				t = c.highlighter.Highlight(t)
			}
			out.AppendText(t)
		}
	}
	return out
}

// Render lays r out for the console without writing it.
func (c *Console) Render(r render.Renderable) []segment.Segment {
	return r.Render(c.Context())
}

// Measure sizes r at the console width.
func (c *Console) Measure(r render.Renderable) render.Measurement {
	return render.Measure(r, c.width)
}

// Print renders values and writes them without a trailing newline.
func (c *Console) Print(values ...any) error {
	return c.write("print", c.build(c.markup, values).Render(c.Context()), false)
}

// Println is Print followed by a newline.
func (c *Console) Println(values ...any) error {
	return c.write("println", c.build(c.markup, values).Render(c.Context()), true)
}

// PrintRaw is Print without markup parsing.
func (c *Console) PrintRaw(values ...any) error {
	return c.write("print_raw", c.build(false, values).Render(c.Context()), false)
}

// PrintlnRaw is Println without markup parsing.
func (c *Console) PrintlnRaw(values ...any) error {
	return c.write("println_raw", c.build(false, values).Render(c.Context()), true)
}

// PrintRenderable renders r and writes it followed by a newline.
func (c *Console) PrintRenderable(r render.Renderable) error {
	return c.write("print_renderable", c.Render(r), true)
}

// WriteSegments encodes pre-rendered segments as they are.
func (c *Console) WriteSegments(segs []segment.Segment) error {
	return c.write("write_segments", segs, false)
}

const ruleChar = '─'

// Rule draws a horizontal line across the console with an optional centered
// title. A title too wide for the line is printed on its own.
func (c *Console) Rule(title string) error {
	th := c.Theme()
	lineStyle := th.Style("rule.line")
	cell := segment.RuneWidth(ruleChar)

	if title == "" {
		line := strings.Repeat(string(ruleChar), c.width/cell)
		return c.write("rule", []segment.Segment{{Spans: []segment.Span{{Text: line, Style: lineStyle}}}}, true)
	}

	heading := c.build(c.markup, []any{title})
	heading.Stylize(th.Style("rule.title"), 0, heading.Len())
	heading.Justify = text.JustifyCenter

	room := c.width - 2 - 2*cell
	titleWidth := heading.CellWidth()
	if titleWidth > room || !render.Measure(heading, room).Fits(room, 1) {
		return c.write("rule", heading.Render(c.Context()), true)
	}

	side := (c.width - titleWidth - 2) / 2
	left := strings.Repeat(string(ruleChar), side/cell) + " "
	right := " " + strings.Repeat(string(ruleChar), (c.width-titleWidth-2-side)/cell)

	spans := []segment.Span{{Text: left, Style: lineStyle}}
	titleSpans := heading.Spans()
	if c.direction == bidi.RTL || bidi.HasRTL(heading.PlainText()) {
		titleSpans = bidi.ReorderSpans(titleSpans, c.direction)
	}
	spans = append(spans, titleSpans...)
	spans = append(spans, segment.Span{Text: right, Style: lineStyle})
	return c.write("rule", []segment.Segment{{Spans: spans}}, true)
}

func (c *Console) write(op string, segs []segment.Segment, newline bool) error {
	if newline && len(segs) > 0 {
		segs[len(segs)-1].Newline = true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.encoder.EncodeSegments(c.out, segs); err != nil {
		c.log.Error(err, "write failed", "op", op)
		return prismerrors.NewWriteError(op, err)
	}
	return nil
}
