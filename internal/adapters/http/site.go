package http

import (
	"sync"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/usecase"
)

var siteFormats = []core.Format{core.FormatHTML, core.FormatMarkdown, core.FormatJSON}

type renderedPage struct {
	body []byte
	etag string
}

// Site holds the last successfully rendered page in every format. Rebuild
// swaps the whole set under the write lock, so readers see either the old
// or the new page, never a mix.
type Site struct {
	pages       *usecase.PageService
	contentPath string
	reloader    *Reloader

	mu      sync.RWMutex
	docs    map[core.Format]renderedPage
	lastErr error
}

// NewSite builds an empty cache; call Rebuild before serving. With a
// non-nil reloader the HTML page carries the live reload script and every
// rebuild notifies connected browsers.
func NewSite(pages *usecase.PageService, contentPath string, reloader *Reloader) *Site {
	return &Site{
		pages:       pages,
		contentPath: contentPath,
		reloader:    reloader,
	}
}

func (s *Site) Rebuild() error {
	err := s.rebuild()
	if s.reloader != nil {
		s.reloader.Notify()
	}
	return err
}

func (s *Site) rebuild() error {
	doc, err := s.pages.Compose(s.contentPath)
	if err != nil {
		s.setError(err)
		return err
	}

	docs := make(map[core.Format]renderedPage, len(siteFormats))
	for _, format := range siteFormats {
		body, err := s.pages.Serialize(doc, format)
		if err != nil {
			s.setError(err)
			return err
		}
		if format == core.FormatHTML && s.reloader != nil {
			body = appendReloadScript(body)
		}
		docs[format] = renderedPage{
			body: body,
			etag: `"` + core.HashContent(body) + `"`,
		}
	}

	s.mu.Lock()
	s.docs = docs
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

func (s *Site) setError(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// Page returns the cached page for format and the error of the latest
// rebuild, if it failed.
func (s *Site) Page(format core.Format) (renderedPage, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	page, ok := s.docs[format]
	return page, ok, s.lastErr
}
