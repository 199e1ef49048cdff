package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mstarzyk/expandable"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// renderer walks a goldmark AST and writes ANSI-styled text. Block nodes are
// separated by a single blank line; inline styling nests through lipgloss.
type renderer struct {
	bold    lipgloss.Style
	italic  lipgloss.Style
	code    lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	link    lipgloss.Style
}

func newRenderer(theme expandable.Theme) *renderer {
	return &renderer{
		bold:    lipgloss.NewStyle().Bold(true),
		italic:  lipgloss.NewStyle().Italic(true),
		code:    lipgloss.NewStyle().Bold(true),
		heading: lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		link:    lipgloss.NewStyle().Underline(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *renderer) render(source []byte, width int) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		r.block(&buf, c, source, width)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (r *renderer) block(buf *bytes.Buffer, node ast.Node, source []byte, width int) {
	switch n := node.(type) {
	case *ast.Paragraph:
		r.wrapped(buf, r.inline(n, source), width, lipgloss.NewStyle())

	case *ast.Heading:
		r.wrapped(buf, r.inline(n, source), width, r.heading)

	case *ast.FencedCodeBlock:
		r.codeBlock(buf, string(n.Language(source)), n.Lines(), source)

	case *ast.CodeBlock:
		r.codeBlock(buf, "", n.Lines(), source)

	case *ast.List:
		r.list(buf, n, source, width, 0)

	case *ast.ThematicBreak:
		buf.WriteString(r.muted.Render(strings.Repeat("─", min(width, 20))))
		buf.WriteString("\n")

	default:
		// Blockquotes and anything unrecognized: recurse into children
		// unstyled.
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.block(buf, c, source, width)
		}
	}

	if node.NextSibling() != nil {
		buf.WriteString("\n")
	}
}

// wrapped word-wraps inline content to width, styles it, and writes it with
// a trailing newline.
func (r *renderer) wrapped(buf *bytes.Buffer, inline string, width int, style lipgloss.Style) {
	wrapped := lipgloss.NewStyle().Width(width).Render(style.Render(inline))
	buf.WriteString(wrapped)
	buf.WriteString("\n")
}

// codeBlock writes code lines verbatim behind a gutter. Code is never
// reflowed; the surrounding view decides how to clip it.
func (r *renderer) codeBlock(buf *bytes.Buffer, lang string, lines *text.Segments, source []byte) {
	if lang != "" {
		buf.WriteString(r.muted.Render(lang))
		buf.WriteString("\n")
	}
	gutter := r.muted.Render("│") + " "
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		content := strings.TrimRight(string(seg.Value(source)), "\n")
		buf.WriteString(gutter + content)
		buf.WriteString("\n")
	}
}

func (r *renderer) list(buf *bytes.Buffer, node *ast.List, source []byte, width, depth int) {
	indent := strings.Repeat("  ", depth)
	num := node.Start

	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "- "
		if node.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}

		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				r.listItem(buf, indent+marker, r.inline(in, source), width)
				marker = strings.Repeat(" ", len(marker))
			case *ast.List:
				r.list(buf, in, source, width, depth+1)
				marker = strings.Repeat(" ", len(marker))
			default:
				r.block(buf, ic, source, width)
			}
		}
	}
}

// listItem writes a marker-prefixed item with continuation lines indented
// under the text, not the marker.
func (r *renderer) listItem(buf *bytes.Buffer, prefix, content string, width int) {
	itemWidth := width - len(prefix)
	if itemWidth < 10 {
		itemWidth = 10
	}
	wrapped := lipgloss.NewStyle().Width(itemWidth).Render(content)
	continuation := strings.Repeat(" ", len(prefix))
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			buf.WriteString(prefix + line + "\n")
		} else {
			buf.WriteString(continuation + line + "\n")
		}
	}
}

// inline collects the styled inline text of a block node's children.
func (r *renderer) inline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.inlineNode(&buf, c, source)
	}
	return buf.String()
}

func (r *renderer) inlineNode(buf *bytes.Buffer, node ast.Node, source []byte) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		if n.SoftLineBreak() {
			buf.WriteByte(' ')
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.Emphasis:
		inner := r.inline(n, source)
		if n.Level == 1 {
			buf.WriteString(r.italic.Render(inner))
		} else {
			buf.WriteString(r.bold.Render(inner))
		}

	case *ast.CodeSpan:
		buf.WriteString(r.code.Render(r.inline(n, source)))

	case *ast.Link:
		buf.WriteString(r.link.Render(r.inline(n, source)))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		buf.WriteString(r.link.Render(string(n.URL(source))))

	case *ast.Image:
		buf.WriteString(r.link.Render(r.inline(n, source)))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.inlineNode(buf, c, source)
		}
	}
}
