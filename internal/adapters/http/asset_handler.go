package http

import (
	"bytes"
	"net/http"
	"path/filepath"
	"time"

	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/core"
)

// AssetHandler serves files from the static directory. Requests that are not
// a file there fall through to next, or 404 when next is nil.
type AssetHandler struct {
	fs   fs.FileSystem
	root string
	next http.Handler
}

func NewAssetHandler(fs fs.FileSystem, root string, next http.Handler) http.Handler {
	return &AssetHandler{
		fs:   fs,
		root: root,
		next: next,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if err := core.ValidateAssetPath(req.URL.Path); err != nil {
		http.NotFound(w, req)
		return
	}

	rel := core.AssetRelPath(req.URL.Path)
	if rel == "" || rel == "." {
		h.fallThrough(w, req)
		return
	}

	path := filepath.Join(h.root, filepath.FromSlash(rel))
	data, err := h.fs.ReadFile(path)
	if err != nil {
		h.fallThrough(w, req)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(path))
	http.ServeContent(w, req, filepath.Base(path), time.Time{}, bytes.NewReader(data))
}

func (h *AssetHandler) fallThrough(w http.ResponseWriter, req *http.Request) {
	if h.next == nil {
		http.NotFound(w, req)
		return
	}
	h.next.ServeHTTP(w, req)
}
