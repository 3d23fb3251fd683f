package folio

import (
	"bytes"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"net/http"

	"github.com/3-lines-studio/folio/internal/adapters/content"
	"github.com/3-lines-studio/folio/internal/adapters/env"
	"github.com/3-lines-studio/folio/internal/adapters/fs"
	adhttp "github.com/3-lines-studio/folio/internal/adapters/http"
	"github.com/3-lines-studio/folio/internal/adapters/render"
	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/markup"
	"github.com/3-lines-studio/folio/internal/usecase"
)

type (
	Content         = core.Content
	Node            = core.Node
	Format          = core.Format
	ValidationError = core.ValidationError
	FieldError      = core.FieldError
)

const (
	FormatHTML     = core.FormatHTML
	FormatMarkdown = core.FormatMarkdown
	FormatJSON     = core.FormatJSON
)

var ErrContentValidation = core.ErrContentValidation

type Router = adhttp.Router

type Option func(*App)

func WithContentPath(path string) Option {
	return func(a *App) { a.contentPath = path }
}

func WithStaticDir(dir string) Option {
	return func(a *App) { a.staticDir = dir }
}

// WithStylesheet links href from the HTML head.
func WithStylesheet(href string) Option {
	return func(a *App) { a.stylesheet = href }
}

// WithFS reads content and static files from fsys instead of the working
// directory, e.g. an embed.FS compiled into the binary.
func WithFS(fsys iofs.FS) Option {
	return func(a *App) { a.files = fs.NewReadOnlyFileSystem(fsys) }
}

func WithDev(dev bool) Option {
	return func(a *App) { a.isDev = dev }
}

// WithLiveReload makes served HTML reload itself after every Rebuild.
func WithLiveReload() Option {
	return func(a *App) { a.reloader = adhttp.NewReloader() }
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

type App struct {
	contentPath string
	staticDir   string
	stylesheet  string
	isDev       bool
	files       fs.FileSystem
	logger      *slog.Logger
	reloader    *adhttp.Reloader

	pages *usecase.PageService
	site  *adhttp.Site
}

// New renders the portfolio once. Outside dev mode a content error fails
// New; in dev the app starts anyway and serves the error page until a
// Rebuild succeeds.
func New(opts ...Option) (*App, error) {
	app := &App{
		contentPath: "content.yaml",
		staticDir:   "static",
		isDev:       env.IsDev(),
		files:       fs.NewOSFileSystem(),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(app)
	}

	app.pages = usecase.NewPageService(
		content.NewLoader(app.files),
		render.NewRegistry(render.Options{CSSHref: app.stylesheet}),
		markup.New().Inline,
	)
	app.site = adhttp.NewSite(app.pages, app.contentPath, app.reloader)

	if err := app.Rebuild(); err != nil && !app.isDev {
		return nil, err
	}
	return app, nil
}

func (a *App) Rebuild() error {
	if err := a.site.Rebuild(); err != nil {
		a.logger.Error("render failed", "content", a.contentPath, "error", err)
		return err
	}
	a.logger.Debug("rendered", "content", a.contentPath)
	return nil
}

// Wrap registers the page routes on api. Files in the static directory take
// precedence; other paths go to api. api should match "/" exactly, as chi
// does.
func (a *App) Wrap(api Router) http.Handler {
	if api == nil {
		panic("folio: nil router passed to Wrap; use app.Handler()")
	}
	adhttp.RegisterPageRoutes(api, a.site, a.isDev)
	return adhttp.NewAssetHandler(a.files, a.staticDir, api)
}

func (a *App) Handler() http.Handler {
	return adhttp.NewRouter(a.site, a.files, a.staticDir, a.isDev, a.logger)
}

// Render composes the current content and serializes it in format.
func (a *App) Render(format Format) ([]byte, error) {
	out := a.pages.Render(usecase.RenderInput{
		ContentPath: a.contentPath,
		Format:      format,
	})
	return out.Body, out.Error
}

// Compose returns the page tree without serializing it.
func (a *App) Compose() (*Node, error) {
	doc, err := a.pages.Compose(a.contentPath)
	if err != nil {
		return nil, err
	}
	return doc.Root, nil
}

// RenderContent renders an in-memory Content Model, bypassing the loader.
func RenderContent(c Content, format Format) ([]byte, error) {
	doc, err := core.NewComposer(c, core.WithInlineFormatter(markup.New().Inline)).Document()
	if err != nil {
		return nil, err
	}
	serializer, err := render.ForFormat(format, render.Options{})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := serializer.Serialize(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
