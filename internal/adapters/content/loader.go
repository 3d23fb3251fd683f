package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/core"
)

var ErrUnsupportedFormat = errors.New("unsupported content format")

type Loader struct {
	fs fs.FileSystem
}

func NewLoader(fs fs.FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads a YAML or JSON content file and builds the Content Model. It
// does not validate required fields; the composer does.
func (l *Loader) Load(path string) (core.Content, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return core.Content{}, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &doc)
	case ".json":
		err = decodeJSON(data, &doc)
	default:
		return core.Content{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return core.Content{}, fmt.Errorf("failed to decode content file %s: %w", path, err)
	}

	c, err := doc.toCore()
	if err != nil {
		return core.Content{}, fmt.Errorf("invalid content file %s: %w", path, err)
	}
	return c, nil
}

func decodeYAML(data []byte, doc *document) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(doc)
}

func decodeJSON(data []byte, doc *document) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(doc)
}
