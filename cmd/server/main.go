package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/proptrack-io/property-management-service/internal/api"
	"github.com/proptrack-io/property-management-service/internal/assist"
	"github.com/proptrack-io/property-management-service/internal/auth"
	"github.com/proptrack-io/property-management-service/internal/monitoring"
	"github.com/proptrack-io/property-management-service/internal/snapshot"
	"github.com/proptrack-io/property-management-service/internal/store"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, relying on environment")
	}

	var (
		port           = flag.Int("port", 8080, "HTTP server port")
		snapshotDriver = flag.String("snapshot-driver", "", "Snapshot driver (sqlite, postgres, memory)")
		snapshotPath   = flag.String("snapshot-path", "", "Database file for the sqlite driver")
		snapshotDSN    = flag.String("snapshot-dsn", "", "Connection string for the postgres driver")
		redisAddr      = flag.String("redis-addr", "", "Redis address for the remote replica (empty disables sync)")
		assistBaseURL  = flag.String("assist-base-url", "", "Completion endpoint base URL")
	)
	flag.Parse()

	// Flags override the environment the snapshot factory reads.
	if *snapshotDriver != "" {
		os.Setenv("PROPTRACK_SNAPSHOT_DRIVER", *snapshotDriver)
	}
	if *snapshotPath != "" {
		os.Setenv("PROPTRACK_SNAPSHOT_PATH", *snapshotPath)
	}
	if *snapshotDSN != "" {
		os.Setenv("PROPTRACK_SNAPSHOT_DSN", *snapshotDSN)
	}

	ctx := context.Background()

	snap, err := snapshot.Open(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open snapshot storage")
	}
	defer snap.Close()

	var opts []store.Option
	if *redisAddr != "" {
		replicator := store.NewRedisReplicator(*redisAddr)
		defer replicator.Close()
		opts = append(opts, store.WithReplicator(replicator))
	}

	recordStore := store.New(snap, opts...)
	if err := recordStore.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load record store")
	}

	monitoring.InitMetrics()

	identities := auth.NewManager(snap, auth.DecodeOnlyVerifier{})
	assistant := assist.NewClient(*assistBaseURL, os.Getenv("PROPTRACK_ASSIST_API_KEY"))

	server := api.NewServer(recordStore, identities, assistant)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: server.Router(),
	}

	go func() {
		log.Info().Msgf("Starting property management service on port %d", *port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
	log.Info().Msg("Server exiting")
}
