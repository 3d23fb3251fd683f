package folio

import (
	"context"
	"fmt"

	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/usecase"
)

// Export writes index.html, profile.md and tree.json to outputDir and copies
// the static directory next to them. It returns every file written.
func (a *App) Export(ctx context.Context, outputDir string) ([]string, error) {
	tree, ok := a.files.(fs.TreeFileSystem)
	if !ok {
		return nil, fmt.Errorf("export needs a writable filesystem: %w", fs.ErrReadOnly)
	}

	out := usecase.NewBuildService(a.pages, tree, nil).BuildSite(ctx, usecase.BuildInput{
		ContentPath: a.contentPath,
		StaticDir:   a.staticDir,
		OutputDir:   outputDir,
	})
	return out.Files, out.Error
}
