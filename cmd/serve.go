package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lugo/internal/account"
	"lugo/internal/api"
	"lugo/internal/company"
	"lugo/internal/config"
	"lugo/internal/listing"
	"lugo/internal/person"
	"lugo/internal/property"
	"lugo/internal/session"
	"lugo/pkg/logger"
	"lugo/pkg/storage"
)

func setupServer(ctx context.Context, cfg *config.Config, strg storage.Storage, sessions *session.Store) func(ctx context.Context) { //nolint: lll
	persons := person.New(strg)

	server, err := api.NewServer(api.Deps{
		Companies:  company.New(strg, persons),
		Properties: property.New(strg),
		Listings:   listing.New(strg),
		Accounts:   account.New(strg, persons),
		Sessions:   sessions,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			rdb, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			sessions := session.New(rdb, session.Options{
				Secret: cfg.Session.Secret,
				TTL:    cfg.Session.TTL,
			})

			stopWebserver := setupServer(ctx, cfg, strg, sessions)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
