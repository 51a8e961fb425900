package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bitbucket.org/crgw/flexrates/api"
	"bitbucket.org/crgw/flexrates/internal/web"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the price matrix over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.ValidateCredentials(); err != nil {
				return err
			}

			router, err := web.SetupRouter(a.logger, a.factory, web.Options{
				Document:      api.Document,
				SlowThreshold: a.cfg.SlowThreshold,
			})
			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:              fmt.Sprintf(":%s", a.cfg.Port),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			return serverApp(cmd.Context(), httpServer, a.logger)
		},
	}

	cmd.Flags().StringVar(&a.cfg.Port, "port", a.cfg.Port, "listen port (PORT)")

	return cmd
}

// serverApp runs the server until it fails or ctx is done, then shuts it
// down gracefully.
func serverApp(ctx context.Context, httpServer *http.Server, logger *zerolog.Logger) error {
	done := make(chan error, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-done:
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-done; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
