package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/core"
)

type Router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

// RegisterPageRoutes mounts the rendered page in every format, plus the live
// reload stream when the site has a reloader.
func RegisterPageRoutes(r Router, site *Site, isDev bool) {
	html := NewPageHandler(site, core.FormatHTML, isDev)
	r.Handle("/", html)
	r.Handle("/index.html", html)
	r.Handle("/profile.md", NewPageHandler(site, core.FormatMarkdown, isDev))
	r.Handle("/tree.json", NewPageHandler(site, core.FormatJSON, isDev))
	r.Handle("/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	if site.reloader != nil {
		r.Handle(ReloadPath, site.reloader)
	}
}

// NewRouter builds the chi router used by folio serve: page routes first,
// then files from staticDir for everything else.
func NewRouter(site *Site, files fs.FileSystem, staticDir string, isDev bool, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	if isDev {
		r.Use(middleware.NoCache)
	}

	RegisterPageRoutes(r, site, isDev)
	r.NotFound(NewAssetHandler(files, staticDir, nil).ServeHTTP)

	return r
}

// RequestLogger logs one line per request through slog.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, req)

			if req.URL.Path == ReloadPath {
				return
			}
			logger.Info("request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(req.Context()),
			)
		})
	}
}
