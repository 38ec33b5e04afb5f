// Package markup parses bracketed style tags such as "[bold red]hi[/]" into
// styled text.
package markup

import (
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/text"
	"github.com/alexisbeaulieu97/prism/internal/theme"
)

// Parser turns markup into text. The zero value understands style
// expressions and links; set Theme to also accept theme style names as tags.
type Parser struct {
	Theme *theme.Theme
}

type frame struct {
	style style.Style
	link  string
}

// Parse parses s with the zero Parser.
func Parse(s string) *text.Text {
	return Parser{}.Parse(s)
}

// Parse scans s once from left to right. A tag whose content is not a valid
// style expression is kept as literal text, brackets included. "[/]" and
// "[/name]" close the innermost open tag without checking the name; closing
// with nothing open does nothing. Parse never fails.
func (p Parser) Parse(s string) *text.Text {
	out := text.New()
	var stack []frame
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		span := segment.Span{Text: buf.String()}
		for _, f := range stack {
			span.Style = span.Style.Combine(f.style)
			if f.link != "" {
				span.Link = f.link
			}
		}
		out.AppendSpan(span)
		buf.Reset()
	}

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '[' && strings.HasPrefix(s[i:], "[["):
			buf.WriteByte('[')
			i += 2
		case c == ']' && strings.HasPrefix(s[i:], "]]"):
			buf.WriteByte(']')
			i += 2
		case c == '[':
			end := strings.IndexByte(s[i+1:], ']')
			if end < 0 {
				buf.WriteString(s[i:])
				i = len(s)
				continue
			}
			content := s[i+1 : i+1+end]
			tag := s[i : i+end+2]
			if strings.Contains(content, "[") {
				buf.WriteByte('[')
				i++
				continue
			}
			i += len(tag)

			if strings.HasPrefix(content, "/") {
				if len(stack) > 0 {
					flush()
					stack = stack[:len(stack)-1]
				}
				continue
			}
			if f, ok := p.parseTag(content); ok {
				flush()
				stack = append(stack, f)
				continue
			}
			buf.WriteString(tag)
		default:
			buf.WriteByte(c)
			i++
		}
	}
	flush()
	return out
}

// parseTag classifies the content of an opening tag. Every token must be a
// theme style name, a "link=<url>" pair or part of a style expression.
func (p Parser) parseTag(content string) (frame, bool) {
	tokens := strings.Fields(content)
	if len(tokens) == 0 {
		return frame{}, false
	}

	var f frame
	var rest []string
	for _, tok := range tokens {
		if url, ok := cutLink(tok); ok {
			if url == "" {
				return frame{}, false
			}
			f.link = url
			continue
		}
		if st, ok := p.Theme.Lookup(tok); ok {
			f.style = f.style.Combine(st)
			continue
		}
		rest = append(rest, tok)
	}

	if len(rest) > 0 {
		st, ok := style.ParseStyle(strings.Join(rest, " "))
		if !ok {
			return frame{}, false
		}
		f.style = f.style.Combine(st)
	}
	return f, true
}

func cutLink(tok string) (string, bool) {
	if len(tok) < len("link=") || !strings.EqualFold(tok[:len("link=")], "link=") {
		return "", false
	}
	return tok[len("link="):], true
}

var escaper = strings.NewReplacer("[", "[[", "]", "]]")

// Escape doubles every bracket in s so Parse reproduces s literally.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Strip returns the plain text of s with markup removed.
func Strip(s string) string {
	return Parse(s).PlainText()
}
