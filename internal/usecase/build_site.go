package usecase

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/3-lines-studio/folio/internal/core"
)

const maxParallelCopies = 8

// Outputs written by a build, relative to the output directory.
var buildOutputs = []struct {
	Name   string
	Format core.Format
}{
	{"index.html", core.FormatHTML},
	{"profile.md", core.FormatMarkdown},
	{"tree.json", core.FormatJSON},
}

type BuildInput struct {
	ContentPath string
	StaticDir   string
	OutputDir   string
}

type BuildOutput struct {
	Files []string
	Error error
}

type BuildService struct {
	pages    *PageService
	fs       TreeFileSystem
	reporter BuildReporter
}

func NewBuildService(pages *PageService, fs TreeFileSystem, reporter BuildReporter) *BuildService {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &BuildService{
		pages:    pages,
		fs:       fs,
		reporter: reporter,
	}
}

func (s *BuildService) BuildSite(ctx context.Context, input BuildInput) BuildOutput {
	report := s.reporter

	stepCompose := report.StartStep("Composing page")
	doc, err := s.pages.Compose(input.ContentPath)
	report.EndStep(stepCompose, err)
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			for _, issue := range verr.Issues {
				report.AddIssue(issue.Field, issue.Message)
			}
		}
		return BuildOutput{Error: err}
	}

	if err := s.fs.MkdirAll(input.OutputDir, 0755); err != nil {
		return BuildOutput{Error: fmt.Errorf("failed to create output dir: %w", err)}
	}

	var files []string

	stepWrite := report.StartStep("Writing documents")
	for _, out := range buildOutputs {
		body, err := s.pages.Serialize(doc, out.Format)
		if err != nil {
			report.EndStep(stepWrite, err)
			return BuildOutput{Files: files, Error: err}
		}
		path := filepath.Join(input.OutputDir, out.Name)
		if err := s.fs.WriteFile(path, body, 0644); err != nil {
			err = fmt.Errorf("failed to write %s: %w", out.Name, err)
			report.EndStep(stepWrite, err)
			return BuildOutput{Files: files, Error: err}
		}
		files = append(files, path)
		report.AddFile(path)
	}
	report.EndStep(stepWrite, nil)

	if input.StaticDir == "" || !s.fs.FileExists(input.StaticDir) {
		return BuildOutput{Files: files}
	}

	stepAssets := report.StartStep("Copying static assets")
	copied, err := s.copyStatic(ctx, input.StaticDir, input.OutputDir)
	report.EndStep(stepAssets, err)
	for _, path := range copied {
		report.AddFile(path)
	}
	files = append(files, copied...)
	if err != nil {
		return BuildOutput{Files: files, Error: err}
	}

	return BuildOutput{Files: files}
}

func (s *BuildService) copyStatic(ctx context.Context, srcDir, destDir string) ([]string, error) {
	var pairs [][2]string
	err := s.fs.WalkDir(srcDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		pairs = append(pairs, [2]string{path, filepath.Join(destDir, rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk static dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelCopies)
	for _, p := range pairs {
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.fs.CopyFile(p[0], p[1]); err != nil {
				return fmt.Errorf("failed to copy %s: %w", p[0], err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	copied := make([]string, len(pairs))
	for i, p := range pairs {
		copied[i] = p[1]
	}
	return copied, nil
}
