package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/folio/internal/adapters/content"
	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/usecase"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Validate the content file and list every problem",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.out.PrintHeader("Folio Doctor")

			doctor := usecase.NewDoctorService(content.NewLoader(fs.NewOSFileSystem()))
			out := doctor.Check(usecase.DoctorInput{ContentPath: a.cfg.Content})

			if out.Error != nil {
				a.out.PrintError("%v", out.Error)
				return out.Error
			}
			if len(out.Issues) > 0 {
				for _, issue := range out.Issues {
					a.out.PrintError("%s", issue)
				}
				return fmt.Errorf("%s has %d issues", a.cfg.Content, len(out.Issues))
			}

			a.out.PrintSuccess("%s is valid", a.cfg.Content)
			return nil
		},
	}
}
