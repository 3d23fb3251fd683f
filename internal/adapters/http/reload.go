package http

import (
	"bytes"
	"net/http"
	"sync"
)

const ReloadPath = "/__folio/reload"

const reloadScript = `<script>(function(){var s=new EventSource("` + ReloadPath + `");s.addEventListener("reload",function(){location.reload()});})();</script>`

// Reloader fans rebuild notifications out to connected browsers in dev.
type Reloader struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewReloader() *Reloader {
	return &Reloader{
		subs: map[chan struct{}]struct{}{},
	}
}

func (h *Reloader) subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Reloader) unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Reloader) Notify() {
	h.mu.Lock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	h.mu.Unlock()
}

func (h *Reloader) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	_, _ = w.Write([]byte("event: ready\ndata: 1\n\n"))
	flusher.Flush()

	for {
		select {
		case <-req.Context().Done():
			return
		case <-ch:
			_, _ = w.Write([]byte("event: reload\ndata: 1\n\n"))
			flusher.Flush()
		}
	}
}

func appendReloadScript(page []byte) []byte {
	if bytes.Contains(page, []byte(ReloadPath)) {
		return page
	}

	closing := []byte("</body>")
	if i := bytes.LastIndex(page, closing); i >= 0 {
		out := make([]byte, 0, len(page)+len(reloadScript))
		out = append(out, page[:i]...)
		out = append(out, reloadScript...)
		return append(out, page[i:]...)
	}
	return append(page[:len(page):len(page)], reloadScript...)
}
