package main

import (
	"github.com/3-lines-studio/folio/internal/adapters/content"
	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/adapters/render"
	"github.com/3-lines-studio/folio/internal/markup"
	"github.com/3-lines-studio/folio/internal/usecase"
)

func (a *app) pageService() *usecase.PageService {
	return usecase.NewPageService(
		content.NewLoader(fs.NewOSFileSystem()),
		render.NewRegistry(render.Options{CSSHref: a.cfg.Stylesheet}),
		markup.New().Inline,
	)
}
