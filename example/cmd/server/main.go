package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/3-lines-studio/folio"
	"github.com/3-lines-studio/folio/example"
)

func main() {
	app, err := folio.New(
		folio.WithFS(example.SiteFS),
		folio.WithContentPath("site/content.yaml"),
		folio.WithStaticDir("site/static"),
	)
	if err != nil {
		log.Fatalf("Failed to render portfolio: %v", err)
	}

	router := chi.NewRouter()
	router.Get("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	addr := ":8080"
	log.Printf("Serving on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, app.Wrap(router)); err != nil {
		log.Fatal(err)
	}
}
