package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/3-lines-studio/folio"
	"github.com/3-lines-studio/folio/internal/adapters/watch"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio, rebuilding when content or assets change",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address")
	cmd.Flags().String("stylesheet", "", "stylesheet href linked from the html head")
	return cmd
}

// serve blocks until ctx is done.
func (a *app) serve(ctx context.Context) error {
	opts := []folio.Option{
		folio.WithContentPath(a.cfg.Content),
		folio.WithStaticDir(a.cfg.StaticDir),
		folio.WithStylesheet(a.cfg.Stylesheet),
		folio.WithDev(a.cfg.Dev),
		folio.WithLogger(a.logger),
	}
	if a.cfg.Dev {
		opts = append(opts, folio.WithLiveReload())
	}

	site, err := folio.New(opts...)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", a.cfg.Addr)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	// Requests inherit ctx so open live reload streams end on shutdown.
	srv := &http.Server{
		Handler:           site.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g.Go(func() error {
		a.logger.Info("serving", "addr", "http://"+ln.Addr().String(), "content", a.cfg.Content, "dev", a.cfg.Dev)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	watcher := watch.New([]string{a.cfg.Content, a.cfg.StaticDir}, watch.DefaultDebounce, func(paths []string) {
		a.logger.Info("change detected, rebuilding", "files", len(paths))
		_ = site.Rebuild()
	}, a.logger)
	g.Go(func() error {
		return watcher.Run(ctx)
	})

	if a.ready != nil {
		a.ready <- ln.Addr().String()
	}

	return g.Wait()
}
