package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/usecase"
)

func newRenderCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the page as html, markdown or json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := core.ParseFormat(format)
			if err != nil {
				return err
			}

			out := a.pageService().Render(usecase.RenderInput{
				ContentPath: a.cfg.Content,
				Format:      f,
			})
			if out.Error != nil {
				a.logger.Error("render failed", "content", a.cfg.Content, "error", out.Error)
				return out.Error
			}

			_, err = cmd.OutOrStdout().Write(out.Body)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(core.FormatHTML), "output format: html, markdown (md) or json")
	cmd.Flags().String("stylesheet", "", "stylesheet href linked from the html head")
	return cmd
}
