package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/usecase"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a starter portfolio",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("failed to resolve project directory: %w", err)
			}

			out := usecase.NewInitService(fs.NewOSFileSystem(), a.out).InitProject(usecase.InitInput{ProjectDir: absDir})
			if out.Error != nil {
				a.out.PrintError("%v", out.Error)
				return out.Error
			}
			return nil
		},
	}
}
