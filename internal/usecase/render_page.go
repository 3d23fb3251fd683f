package usecase

import (
	"bytes"
	"fmt"

	"github.com/3-lines-studio/folio/internal/core"
)

type RenderInput struct {
	ContentPath string
	Format      core.Format
}

type RenderOutput struct {
	Document core.Document
	Body     []byte
	Error    error
}

// PageService loads the content file, composes the page and serializes it.
type PageService struct {
	loader      ContentLoader
	serializers SerializerSource
	format      core.InlineFormatter
}

func NewPageService(loader ContentLoader, serializers SerializerSource, format core.InlineFormatter) *PageService {
	return &PageService{
		loader:      loader,
		serializers: serializers,
		format:      format,
	}
}

func (s *PageService) Compose(contentPath string) (core.Document, error) {
	content, err := s.loader.Load(contentPath)
	if err != nil {
		return core.Document{}, err
	}

	composer := core.NewComposer(content, core.WithInlineFormatter(s.format))
	return composer.Document()
}

func (s *PageService) Render(input RenderInput) RenderOutput {
	doc, err := s.Compose(input.ContentPath)
	if err != nil {
		return RenderOutput{Error: err}
	}

	body, err := s.Serialize(doc, input.Format)
	if err != nil {
		return RenderOutput{Document: doc, Error: err}
	}

	return RenderOutput{
		Document: doc,
		Body:     body,
	}
}

func (s *PageService) Serialize(doc core.Document, format core.Format) ([]byte, error) {
	serializer, err := s.serializers.Serializer(format)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := serializer.Serialize(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
