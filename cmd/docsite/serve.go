package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eringen/docsite"
)

func (c *cli) newServeCmd() *cobra.Command {
	var (
		addr      string
		noMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser-facing configuration for preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := c.load()
			if err != nil {
				return err
			}
			opts := []docsite.AppOption{docsite.WithAddr(addr)}
			if noMetrics {
				opts = append(opts, docsite.WithoutMetrics())
			}
			app := docsite.NewApp(site, opts...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.WithField("address", app.Addr()).Info("Starting HTTP server")
				errCh <- app.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("Received shutdown signal, shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := app.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Error("Failed to shut down HTTP server gracefully")
				return err
			}
			return <-errCh
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8000", "listen address")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "disable the /metrics endpoint")
	return cmd
}
