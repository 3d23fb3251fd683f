package main

import (
	"context"
	"log"
	"os"

	"github.com/3-lines-studio/folio"
)

// Exports the example site from disk; run from the example directory.
func main() {
	app, err := folio.New(
		folio.WithContentPath("site/content.yaml"),
		folio.WithStaticDir("site/static"),
	)
	if err != nil {
		log.Fatal(err)
	}

	out := "dist"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	files, err := app.Export(context.Background(), out)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d files to %s", len(files), out)
}
