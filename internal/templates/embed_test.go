package templates

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProcessFilename(t *testing.T) {
	data := TemplateData{Name: "jane"}

	tests := []struct {
		name         string
		filename     string
		wantFilename string
		wantIsTmpl   bool
	}{
		{
			name:         "tmpl file gets processed",
			filename:     "content.yaml.tmpl",
			wantFilename: "content.yaml",
			wantIsTmpl:   true,
		},
		{
			name:         "regular file unchanged",
			filename:     "static/avatar.svg",
			wantFilename: "static/avatar.svg",
			wantIsTmpl:   false,
		},
		{
			name:         "nested tmpl file",
			filename:     "config/folio.yaml.tmpl",
			wantFilename: "config/folio.yaml",
			wantIsTmpl:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFilename, gotIsTmpl := ProcessFilename(tt.filename, data)
			if gotFilename != tt.wantFilename {
				t.Errorf("ProcessFilename(%q) filename = %q, want %q", tt.filename, gotFilename, tt.wantFilename)
			}
			if gotIsTmpl != tt.wantIsTmpl {
				t.Errorf("ProcessFilename(%q) isTmpl = %v, want %v", tt.filename, gotIsTmpl, tt.wantIsTmpl)
			}
		})
	}
}

func TestProcessContent(t *testing.T) {
	data := TemplateData{Name: "jane-doe", Title: "Jane Doe"}

	tests := []struct {
		name       string
		content    string
		isTemplate bool
		want       string
	}{
		{
			name:       "non-template content unchanged",
			content:    "title: {{.Title}}",
			isTemplate: false,
			want:       "title: {{.Title}}",
		},
		{
			name:       "title and name placeholders",
			content:    "title: \"{{.Title}}\"\nurl: https://github.com/{{.Name}}",
			isTemplate: true,
			want:       "title: \"Jane Doe\"\nurl: https://github.com/jane-doe\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProcessContent([]byte(tt.content), tt.isTemplate, data)
			if err != nil {
				t.Fatalf("ProcessContent(%q) error = %v", tt.content, err)
			}
			if string(got) != tt.want {
				t.Errorf("ProcessContent(%q) = %q, want %q", tt.content, string(got), tt.want)
			}
		})
	}
}

func TestProcessContentQuotesAwkwardNames(t *testing.T) {
	templateFS, err := GetStarterTemplate()
	require.NoError(t, err)
	raw, err := fs.ReadFile(templateFS, "content.yaml.tmpl")
	require.NoError(t, err)

	for _, name := range []string{`jane"doe`, "jane: doe", "#jane", "o'brien", "123", "- x"} {
		t.Run(name, func(t *testing.T) {
			data := TemplateData{Name: name, Title: DeriveTitle(name) + ` "the" dev`}

			out, err := ProcessContent(raw, true, data)
			require.NoError(t, err)

			var doc struct {
				Meta struct {
					Title       string `yaml:"title"`
					Description string `yaml:"description"`
				} `yaml:"meta"`
				Projects []struct {
					Actions []struct {
						Target string `yaml:"target"`
					} `yaml:"actions"`
				} `yaml:"projects"`
			}
			require.NoError(t, yaml.Unmarshal(out, &doc), string(out))
			assert.Equal(t, data.Title, doc.Meta.Title)
			assert.Equal(t, "Portfolio of "+data.Title, doc.Meta.Description)
			require.NotEmpty(t, doc.Projects)
			assert.Equal(t, "https://github.com/"+name, doc.Projects[0].Actions[0].Target)
		})
	}
}

func TestProcessContentInvalidTemplate(t *testing.T) {
	_, err := ProcessContent([]byte("a: [unclosed"), true, TemplateData{})
	assert.Error(t, err)
}

func TestDeriveName(t *testing.T) {
	tests := []struct {
		projectDir string
		want       string
	}{
		{"/home/user/jane", "jane"},
		{".", "portfolio"},
		{"/", "portfolio"},
		{"", "portfolio"},
		{"/path/to/site", "site"},
	}

	for _, tt := range tests {
		if got := DeriveName(tt.projectDir); got != tt.want {
			t.Errorf("DeriveName(%q) = %q, want %q", tt.projectDir, got, tt.want)
		}
	}
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"jane-doe", "Jane Doe"},
		{"john_smith.dev", "John Smith Dev"},
		{"portfolio", "Portfolio"},
		{"---", "Portfolio"},
	}

	for _, tt := range tests {
		if got := DeriveTitle(tt.name); got != tt.want {
			t.Errorf("DeriveTitle(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGetStarterTemplate_Content(t *testing.T) {
	templateFS, err := GetStarterTemplate()
	if err != nil {
		t.Fatalf("GetStarterTemplate() error = %v", err)
	}

	content, err := fs.ReadFile(templateFS, "content.yaml.tmpl")
	if err != nil {
		t.Fatalf("Failed to read content.yaml.tmpl: %v", err)
	}
	if !strings.Contains(string(content), "{{.Title}}") {
		t.Error("content.yaml.tmpl should reference {{.Title}}")
	}

	if _, err := fs.ReadFile(templateFS, "folio.yaml.tmpl"); err != nil {
		t.Fatalf("starter should include folio.yaml.tmpl: %v", err)
	}
	if _, err := fs.ReadFile(templateFS, "static/avatar.svg"); err != nil {
		t.Fatalf("starter should include static/avatar.svg: %v", err)
	}
}
