package core

import (
	"strings"
	"testing"
)

func TestRenderHTMLShell(t *testing.T) {
	doc, err := RenderHTMLShell(ShellInput{
		BodyHTML:    "<main></main>",
		Title:       "Jane <Doe>",
		Description: `AI "engineer"`,
		Lang:        "de",
		CSSHref:     "/styles.css",
	})
	if err != nil {
		t.Fatalf("RenderHTMLShell() error = %v", err)
	}

	for _, want := range []string{
		`<html lang="de">`,
		"<title>Jane &lt;Doe&gt;</title>",
		`<meta name="description" content="AI &#34;engineer&#34;" />`,
		`<link rel="stylesheet" href="/styles.css" />`,
		"<main></main>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("Expected document to contain %q", want)
		}
	}
}

func TestRenderHTMLShellDefaults(t *testing.T) {
	doc, err := RenderHTMLShell(ShellInput{BodyHTML: "<main></main>"})
	if err != nil {
		t.Fatalf("RenderHTMLShell() error = %v", err)
	}

	if !strings.Contains(doc, `<html lang="en">`) {
		t.Error("Expected default lang en")
	}
	if strings.Contains(doc, "stylesheet") {
		t.Error("Expected no stylesheet link without href")
	}
}

func TestRenderHTMLShellRequiresBody(t *testing.T) {
	if _, err := RenderHTMLShell(ShellInput{}); err == nil {
		t.Error("Expected error for empty body")
	}
}
