package render

import (
	"fmt"

	"github.com/3-lines-studio/folio/internal/core"
)

type Options struct {
	CSSHref string
}

func ForFormat(format core.Format, opts Options) (core.Serializer, error) {
	switch format {
	case core.FormatHTML:
		return NewHTMLSerializer(opts.CSSHref), nil
	case core.FormatMarkdown:
		return NewMarkdownSerializer(), nil
	case core.FormatJSON:
		return NewJSONSerializer(), nil
	}
	return nil, fmt.Errorf("no serializer for format %q", format)
}

// Registry hands out serializers that share one set of Options.
type Registry struct {
	opts Options
}

func NewRegistry(opts Options) *Registry {
	return &Registry{opts: opts}
}

func (r *Registry) Serializer(format core.Format) (core.Serializer, error) {
	return ForFormat(format, r.opts)
}
