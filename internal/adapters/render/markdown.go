package render

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/3-lines-studio/folio/internal/core"
)

// MarkdownSerializer writes a README-style profile. Only links navigate;
// trigger buttons have no meaning outside a browser and are skipped.
type MarkdownSerializer struct{}

func NewMarkdownSerializer() *MarkdownSerializer {
	return &MarkdownSerializer{}
}

func (s *MarkdownSerializer) Serialize(w io.Writer, doc core.Document) error {
	md := markdown.NewMarkdown(w)
	for _, section := range doc.Root.Children {
		id, _ := section.Attr("id")
		if core.Section(id) == core.SectionSkills {
			writeSkills(md, section)
			continue
		}
		writeBlock(md, section)
	}
	return md.Build()
}

func writeSkills(md *markdown.Markdown, section *core.Node) {
	for _, h := range section.Find(core.RoleHeading) {
		md.H2(escapeText(strings.TrimSpace(h.TextContent())))
		md.PlainText("")
	}
	var names []string
	for _, grid := range section.Find(core.RoleGrid) {
		for _, cell := range grid.Children {
			names = append(names, escapeLineStart(escapeText(cell.TextContent())))
		}
	}
	if len(names) > 0 {
		md.BulletList(names...)
		md.PlainText("")
	}
}

func writeBlock(md *markdown.Markdown, n *core.Node) {
	if n.Role == core.RoleActionRow {
		if links := actionLinks(n); links != "" {
			md.PlainText(links)
			md.PlainText("")
		}
		return
	}

	switch n.Tag {
	case "h1":
		md.H1(escapeText(n.TextContent()))
		md.PlainText("")
	case "h2":
		md.H2(escapeText(strings.TrimSpace(n.TextContent())))
		md.PlainText("")
	case "h3":
		md.H3(escapeText(strings.TrimSpace(n.TextContent())))
		md.PlainText("")
	case "p":
		md.PlainText(escapeLineStart(inline(n.Children)))
		md.PlainText("")
	case "img":
		src, _ := n.Attr("src")
		alt, _ := n.Attr("alt")
		md.PlainText(markdown.Image(alt, src))
		md.PlainText("")
	case "ul":
		items := make([]string, 0, len(n.Children))
		for _, li := range n.Children {
			items = append(items, escapeLineStart(inline(li.Children)))
		}
		if len(items) > 0 {
			md.BulletList(items...)
			md.PlainText("")
		}
	default:
		for _, c := range n.Children {
			writeBlock(md, c)
		}
	}
}

func actionLinks(row *core.Node) string {
	var links []string
	for _, a := range row.Children {
		if href, ok := a.Attr("href"); ok {
			links = append(links, markdown.Link(escapeText(a.TextContent()), href))
		}
	}
	return strings.Join(links, " · ")
}

func inline(nodes []*core.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if n.Kind == core.TextNode {
			b.WriteString(escapeText(n.Text))
			continue
		}
		text := inline(n.Children)
		switch n.Tag {
		case "strong":
			b.WriteString(markdown.Bold(text))
		case "em":
			b.WriteString(markdown.Italic(text))
		case "code":
			b.WriteString(markdown.Code(n.TextContent()))
		case "del":
			b.WriteString(markdown.Strikethrough(text))
		case "a":
			href, _ := n.Attr("href")
			b.WriteString(markdown.Link(text, href))
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"~", `\~`,
	"|", `\|`,
)

// escapeText backslash-escapes the punctuation that starts inline markup.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// escapeLineStart escapes a heading, quote, list or ordered list marker at
// the start of s so it stays text inside a paragraph or list item.
func escapeLineStart(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '#', '+', '-', '=':
		return `\` + s
	}
	digits := 0
	for digits < len(s) && digits < 9 && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(s) && (s[digits] == '.' || s[digits] == ')') {
		return s[:digits] + `\` + s[digits:]
	}
	return s
}
