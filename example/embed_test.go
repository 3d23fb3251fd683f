package example

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/3-lines-studio/folio"
)

func TestExampleSiteRenders(t *testing.T) {
	app, err := folio.New(
		folio.WithFS(SiteFS),
		folio.WithContentPath("site/content.yaml"),
		folio.WithStaticDir("site/static"),
		folio.WithDev(false),
	)
	if err != nil {
		t.Fatalf("example content should be valid: %v", err)
	}

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<code>pgvector</code>") {
		t.Error("inline code in bullets should render")
	}

	md, err := app.Render(folio.FormatMarkdown)
	if err != nil {
		t.Fatalf("Render(markdown) error = %v", err)
	}
	snaps.WithConfig(snaps.Ext(".md")).MatchStandaloneSnapshot(t, string(md))
}
