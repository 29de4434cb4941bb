package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dfryer1193/agenda/contacts/application"
	"github.com/dfryer1193/agenda/contacts/persistence"
	"github.com/dfryer1193/agenda/internal/config"
	"github.com/dfryer1193/agenda/internal/logging"
	"github.com/dfryer1193/agenda/internal/rest"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.InitLogger(os.Stdout, "agenda", zerolog.InfoLevel)
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logging.InitLogger(os.Stdout, "agenda", cfg.Level())

	directory := persistence.NewHashDirectory(cfg.BucketCount)
	contactService := application.NewContactService(directory)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: rest.NewApi(contactService, cfg.MaxImageBytes),
	}

	go func() {
		log.Info().Int("port", cfg.Port).Int("buckets", directory.BucketCount()).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}
