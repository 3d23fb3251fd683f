package usecase

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/3-lines-studio/folio/internal/templates"
)

type InitInput struct {
	ProjectDir string
}

type InitOutput struct {
	Files []string
	Error error
}

type InitService struct {
	fs       FileSystem
	cli      CLIOutput
	template func() (fs.FS, error)
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:       fs,
		cli:      cli,
		template: templates.GetStarterTemplate,
	}
}

func (s *InitService) InitProject(input InitInput) InitOutput {
	s.cli.PrintHeader("Folio Init")

	if s.fs.FileExists(input.ProjectDir) {
		entries, err := s.fs.ReadDir(input.ProjectDir)
		if err != nil {
			return InitOutput{Error: fmt.Errorf("failed to read directory: %w", err)}
		}
		if len(entries) > 0 {
			return InitOutput{Error: fmt.Errorf("directory '%s' already exists and is not empty", input.ProjectDir)}
		}
	}

	templateFS, err := s.template()
	if err != nil {
		return InitOutput{Error: fmt.Errorf("failed to load starter template: %w", err)}
	}

	if err := s.fs.MkdirAll(input.ProjectDir, 0755); err != nil {
		return InitOutput{Error: fmt.Errorf("failed to create project directory: %w", err)}
	}

	data := templates.DataFor(input.ProjectDir)
	var created []string

	err = fs.WalkDir(templateFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		targetPath, isTemplate := templates.ProcessFilename(path, data)
		targetPath = filepath.Join(input.ProjectDir, filepath.FromSlash(targetPath))

		if err := s.fs.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(targetPath), err)
		}
		content, err = templates.ProcessContent(content, isTemplate, data)
		if err != nil {
			return fmt.Errorf("failed to process template %s: %w", path, err)
		}
		if err := s.fs.WriteFile(targetPath, content, 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetPath, err)
		}

		if isTemplate {
			s.cli.PrintFile(targetPath + " (generated)")
		} else {
			s.cli.PrintFile(targetPath)
		}
		created = append(created, targetPath)
		return nil
	})
	if err != nil {
		return InitOutput{Files: created, Error: err}
	}

	s.cli.PrintDone(fmt.Sprintf("Created %d files for %q", len(created), data.Title))
	s.cli.PrintStep("Next: cd %s && folio serve", input.ProjectDir)
	return InitOutput{Files: created}
}
