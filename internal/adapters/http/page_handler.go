package http

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"net/http"

	"github.com/3-lines-studio/folio/internal/core"
)

type PageHandler struct {
	site   *Site
	format core.Format
	isDev  bool
}

func NewPageHandler(site *Site, format core.Format, isDev bool) http.Handler {
	return &PageHandler{
		site:   site,
		format: format,
		isDev:  isDev,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	page, ok, err := h.site.Page(h.format)

	// In dev the latest failure wins so edits show their errors right away.
	if err != nil && (h.isDev || !ok) {
		h.serveError(w, err)
		return
	}
	if !ok {
		h.serveError(w, fmt.Errorf("no %s page rendered yet", h.format))
		return
	}

	w.Header().Set("ETag", page.etag)
	if req.Header.Get("If-None-Match") == page.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", contentType(h.format))
	w.WriteHeader(http.StatusOK)
	if req.Method != http.MethodHead {
		_, _ = w.Write(page.body)
	}
}

func contentType(format core.Format) string {
	switch format {
	case core.FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case core.FormatJSON:
		return "application/json"
	}
	return "text/html; charset=utf-8"
}

func (h *PageHandler) serveError(w http.ResponseWriter, err error) {
	data := errorData{
		Message:    err.Error(),
		IsDev:      h.isDev,
		LiveReload: h.site.reloader != nil,
	}

	var buf bytes.Buffer
	if err := errorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}

type errorData struct {
	Message    string
	IsDev      bool
	LiveReload bool
}

var errorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Error</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; white-space: pre-wrap; }
    </style>
</head>
<body>
    <h1>Portfolio could not be rendered</h1>
    {{if .IsDev}}
    <pre>{{.Message}}</pre>
    {{else}}
    <p>An error occurred while processing your request.</p>
    {{end}}
    {{if .LiveReload}}` + reloadScript + `{{end}}
</body>
</html>`))
