package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joestump/scribo/internal/api"
	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/client"
	"github.com/joestump/scribo/internal/db"
	"github.com/joestump/scribo/internal/handler"
	"github.com/joestump/scribo/internal/llm"
	"github.com/joestump/scribo/internal/metrics"
	"github.com/joestump/scribo/internal/session"
	"github.com/joestump/scribo/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the generation backend and web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			generator, err := llm.New(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			generations := store.NewGenerationStore(database)
			if n, err := generations.Count(ctx); err == nil {
				metrics.GenerationsStored.Set(float64(n))
			}

			backend := api.New(api.Deps{
				Generator:      generator,
				Store:          generations,
				FallbackKey:    cfg.LLM.APIKey,
				AllowedOrigins: cfg.CORS.AllowedOrigins,
				RateLimit:      cfg.API.RateLimit,
				RateBurst:      cfg.API.RateBurst,
			})

			router := handler.NewRouter(handler.Deps{
				SessionManager: session.NewManager(database, cfg.DB.Driver, cfg.SessionLifetime, cfg.SecureCookies),
				Registry:       catalog.Default,
				Client:         client.New(cfg.Endpoint.Base, client.WithTimeout(cfg.Endpoint.Timeout)),
				Store:          generations,
				API:            backend,
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().
					Str("addr", cfg.HTTP.Addr).
					Str("provider", generator.Name()).
					Str("endpoint", cfg.Endpoint.Base).
					Msg("listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
