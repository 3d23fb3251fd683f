package core

import (
	"fmt"
	"io"
)

type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatHTML, FormatMarkdown, FormatJSON:
		return Format(s), nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Document is a composed page plus the metadata serializers need.
type Document struct {
	Root        *Node
	Title       string
	Description string
	Lang        string
}

type Serializer interface {
	Serialize(w io.Writer, doc Document) error
}
