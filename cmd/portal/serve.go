package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/portal-api/internal/database"
	"github.com/deppfellow/portal-api/internal/handler"
	"github.com/deppfellow/portal-api/internal/logger"
	"github.com/deppfellow/portal-api/internal/repository"
	"github.com/deppfellow/portal-api/internal/router"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/deppfellow/portal-api/internal/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the background job workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		loggerService := logger.NewLoggerService(cfg.Observability)
		defer loggerService.Shutdown()

		log := logger.NewLoggerWithService(cfg.Observability, loggerService)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if migrateOnStart {
			if err := database.Migrate(ctx, &log, cfg); err != nil {
				log.Fatal().Err(err).Msg("failed to migrate database")
			}
		}

		srv, err := server.New(cfg, &log, loggerService)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize server")
		}

		repos := repository.NewRepositories(srv)

		services, err := service.NewService(srv, repos)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create services")
		}

		handlers := handler.NewHandlers(srv, services)
		srv.SetupHTTPServer(router.NewRouter(srv, handlers, services))

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			if err != nil {
				log.Error().Err(err).Msg("server stopped unexpectedly")
			}
		case <-ctx.Done():
			log.Info().Msg("shutdown signal received")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
			return err
		}

		log.Info().Msg("server exited properly")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
}
