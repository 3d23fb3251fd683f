package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/folio/internal/adapters/cli"
	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/usecase"
)

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export index.html, profile.md, tree.json and static assets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.out.PrintHeader("Folio Build")

			report := cli.NewBuildReport(a.out, cmd.OutOrStdout(), a.cfg.OutputDir)
			build := usecase.NewBuildService(a.pageService(), fs.NewOSFileSystem(), report)

			out := build.BuildSite(cmd.Context(), usecase.BuildInput{
				ContentPath: a.cfg.Content,
				StaticDir:   a.cfg.StaticDir,
				OutputDir:   a.cfg.OutputDir,
			})
			report.Render()

			if out.Error != nil {
				a.logger.Debug("build failed", "error", out.Error)
				return out.Error
			}
			a.logger.Info("build complete", "files", len(out.Files), "output", a.cfg.OutputDir)
			return nil
		},
	}
	cmd.Flags().String("output-dir", "", "output directory")
	cmd.Flags().String("stylesheet", "", "stylesheet href linked from index.html")
	return cmd
}
