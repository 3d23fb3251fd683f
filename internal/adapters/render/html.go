package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/3-lines-studio/folio/internal/core"
)

type HTMLSerializer struct {
	CSSHref string
}

func NewHTMLSerializer(cssHref string) *HTMLSerializer {
	return &HTMLSerializer{CSSHref: cssHref}
}

func (s *HTMLSerializer) Serialize(w io.Writer, doc core.Document) error {
	body, err := RenderFragment(doc.Root)
	if err != nil {
		return err
	}

	page, err := core.RenderHTMLShell(core.ShellInput{
		BodyHTML:    body,
		Title:       doc.Title,
		Description: doc.Description,
		Lang:        doc.Lang,
		CSSHref:     s.CSSHref,
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, page)
	return err
}

// RenderFragment serializes a node tree without the document shell.
func RenderFragment(n *core.Node) (string, error) {
	if n == nil {
		return "", fmt.Errorf("nil node")
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, toHTML(n)); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return buf.String(), nil
}

func toHTML(n *core.Node) *html.Node {
	if n.Kind == core.TextNode {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	hn := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range n.Attrs {
		hn.Attr = append(hn.Attr, html.Attribute{Key: a.Key, Val: a.Value})
	}
	if len(n.Class) > 0 {
		hn.Attr = append(hn.Attr, html.Attribute{Key: "class", Val: strings.Join(n.Class, " ")})
	}
	for _, c := range n.Children {
		hn.AppendChild(toHTML(c))
	}
	return hn
}
