// Package markup formats the small inline-markdown subset allowed in
// bullets and descriptions (emphasis, strong, code spans and links) into
// page nodes. Only paragraphs are parsed, so list, heading and quote markers
// stay literal text, and raw HTML is kept as text.
package markup

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/3-lines-studio/folio/internal/core"
)

type Formatter struct {
	md goldmark.Markdown
}

func New() *Formatter {
	p := parser.NewParser(
		parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
	)
	return &Formatter{
		md: goldmark.New(
			goldmark.WithParser(p),
			goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		),
	}
}

// inlineMarkers are the bytes that can start inline markup. Strings without
// any of them parse to a single text run.
const inlineMarkers = "*_`[<~:\\&"

// Inline satisfies core.InlineFormatter.
func (f *Formatter) Inline(s string) []*core.Node {
	if !strings.ContainsAny(s, inlineMarkers) {
		return core.PlainText(s)
	}

	src := []byte(s)
	doc := f.md.Parser().Parse(text.NewReader(src))

	var out []*core.Node
	first := true
	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		if !first {
			out = appendText(out, " ")
		}
		first = false
		out = append(out, convertChildren(block, src)...)
	}
	if len(out) == 0 {
		return core.PlainText(s)
	}
	return out
}

func convertChildren(n ast.Node, src []byte) []*core.Node {
	var out []*core.Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, convert(c, src)...)
	}
	return mergeText(out)
}

func convert(n ast.Node, src []byte) []*core.Node {
	switch v := n.(type) {
	case *ast.Text:
		s := unescape(v.Segment.Value(src))
		if v.SoftLineBreak() || v.HardLineBreak() {
			s += " "
		}
		return []*core.Node{core.Text(s)}
	case *ast.String:
		return []*core.Node{core.Text(string(v.Value))}
	case *ast.Emphasis:
		tag := "em"
		if v.Level >= 2 {
			tag = "strong"
		}
		return []*core.Node{core.Element(tag, convertChildren(v, src)...)}
	case *ast.CodeSpan:
		var b strings.Builder
		for c := v.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				b.Write(t.Segment.Value(src))
			}
		}
		return []*core.Node{core.Element("code", core.Text(b.String()))}
	case *ast.Link:
		return link(v.Destination, convertChildren(v, src))
	case *ast.AutoLink:
		return link(v.URL(src), []*core.Node{core.Text(string(v.Label(src)))})
	case *extast.Strikethrough:
		return []*core.Node{core.Element("del", convertChildren(v, src)...)}
	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < v.Segments.Len(); i++ {
			seg := v.Segments.At(i)
			b.Write(seg.Value(src))
		}
		return []*core.Node{core.Text(b.String())}
	default:
		return convertChildren(v, src)
	}
}

// link renders an anchor, or only its label when dest is a script or data URL.
func link(dest []byte, children []*core.Node) []*core.Node {
	if html.IsDangerousURL(dest) {
		return children
	}
	href := string(util.URLEscape(dest, true))
	a := core.Element("a", children...).WithAttr("href", href)
	if core.IsExternalTarget(href) {
		a.WithAttr("target", "_blank").WithAttr("rel", "noopener noreferrer")
	}
	return []*core.Node{a}
}

func unescape(b []byte) string {
	b = util.UnescapePunctuations(b)
	b = util.ResolveNumericReferences(b)
	return string(util.ResolveEntityNames(b))
}

func appendText(nodes []*core.Node, s string) []*core.Node {
	return mergeText(append(nodes, core.Text(s)))
}

// mergeText joins adjacent text runs so "a*b" style splits stay one node.
func mergeText(nodes []*core.Node) []*core.Node {
	var out []*core.Node
	for _, n := range nodes {
		if n.Kind == core.TextNode && len(out) > 0 && out[len(out)-1].Kind == core.TextNode {
			out[len(out)-1] = core.Text(out[len(out)-1].Text + n.Text)
			continue
		}
		out = append(out, n)
	}
	return out
}
