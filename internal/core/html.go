package core

import (
	"fmt"
	"html"
	"strings"
)

type ShellInput struct {
	BodyHTML    string
	Title       string
	Description string
	Lang        string
	CSSHref     string
}

func RenderHTMLShell(in ShellInput) (string, error) {
	if in.BodyHTML == "" {
		return "", fmt.Errorf("missing body html")
	}

	lang := in.Lang
	if lang == "" {
		lang = "en"
	}

	title := in.Title
	if title == "" {
		title = "Folio"
	}

	var head strings.Builder
	head.WriteString(`<meta charset="UTF-8" /><meta name="viewport" content="width=device-width, initial-scale=1.0" />`)
	fmt.Fprintf(&head, "<title>%s</title>", html.EscapeString(title))
	if in.Description != "" {
		fmt.Fprintf(&head, `<meta name="description" content="%s" />`, html.EscapeString(in.Description))
	}
	if in.CSSHref != "" {
		fmt.Fprintf(&head, `<link rel="stylesheet" href="%s" />`, html.EscapeString(in.CSSHref))
	}

	doc := fmt.Sprintf(`<!doctype html>
<html lang="%s">
  <head>
    %s
  </head>
  <body>
    %s
  </body>
</html>
`, html.EscapeString(lang), head.String(), in.BodyHTML)

	return doc, nil
}
