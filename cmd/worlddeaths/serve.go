package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"worlddeaths.org/internal/app"
	"worlddeaths.org/internal/restapi"
)

const shutdownTimeout = 10 * time.Second

func (c *cli) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard and the JSON API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ln, err := net.Listen("tcp", fmt.Sprintf(":%d", c.cfg.Port))
			if err != nil {
				return err
			}
			return c.serve(cmd.Context(), ln)
		},
	}
}

// serve runs the HTTP server on ln until ctx is cancelled, then drains
// in-flight requests.
func (c *cli) serve(ctx context.Context, ln net.Listener) error {
	application, err := app.New(c.cfg, c.logger)
	if err != nil {
		_ = ln.Close()
		return err
	}

	api := restapi.NewRestAPI(application)
	defer api.Shutdown()

	srv := &http.Server{
		Handler:      routes(application, api),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(c.logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		c.logger.Info("starting server", "addr", ln.Addr().String(), "env", c.cfg.Env)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	c.logger.Info("server stopped")
	return nil
}
