package render

import (
	"encoding/json"
	"io"

	"github.com/3-lines-studio/folio/internal/core"
)

// JSONSerializer dumps the tree for display layers outside Go.
type JSONSerializer struct {
	Indent string
}

func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{Indent: "  "}
}

type jsonDocument struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Lang        string     `json:"lang"`
	Root        *core.Node `json:"root"`
}

func (s *JSONSerializer) Serialize(w io.Writer, doc core.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", s.Indent)
	return enc.Encode(jsonDocument{
		Title:       doc.Title,
		Description: doc.Description,
		Lang:        doc.Lang,
		Root:        doc.Root,
	})
}
