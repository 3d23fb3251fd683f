package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed all:starter
var starterFS embed.FS

func GetStarterTemplate() (fs.FS, error) {
	return fs.Sub(starterFS, "starter")
}

type TemplateData struct {
	Name  string
	Title string
}

func ProcessFilename(filename string, data TemplateData) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

// ProcessContent fills {{.Name}} and {{.Title}} in a YAML template. The
// placeholders are replaced inside parsed scalar values and the document is
// encoded again, so quotes or colons in a project name still give valid YAML.
func ProcessContent(content []byte, isTemplate bool, data TemplateData) ([]byte, error) {
	if !isTemplate {
		return content, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	if doc.Kind == 0 {
		return content, nil
	}

	fillScalars(&doc, strings.NewReplacer("{{.Name}}", data.Name, "{{.Title}}", data.Title))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode template: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode template: %w", err)
	}
	return buf.Bytes(), nil
}

func fillScalars(n *yaml.Node, r *strings.Replacer) {
	if n.Kind == yaml.ScalarNode {
		n.Value = r.Replace(n.Value)
	}
	for _, c := range n.Content {
		fillScalars(c, r)
	}
}

func DeriveName(projectDir string) string {
	base := filepath.Base(projectDir)
	if base == "." || base == "/" || base == "" {
		return "portfolio"
	}
	return base
}

// DeriveTitle turns a directory name like "jane-doe" into "Jane Doe".
func DeriveTitle(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})
	if len(words) == 0 {
		return "Portfolio"
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func DataFor(projectDir string) TemplateData {
	name := DeriveName(projectDir)
	return TemplateData{
		Name:  name,
		Title: DeriveTitle(name),
	}
}
