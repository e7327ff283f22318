package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"document-ingest/internal/api"
	"document-ingest/internal/backend"
	"document-ingest/internal/blobstore"
	"document-ingest/internal/config"
	"document-ingest/internal/extractor"
	"document-ingest/internal/ingest"
	"document-ingest/internal/splitter"
)

const defaultConfigPath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	configPath := flag.String("config", defaultConfigPath, "Path to the config file")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	ctx := context.Background()
	embedder, store, err := backend.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing backend")
	}

	var archiver ingest.Archiver
	if cfg.ArchivalEnabled() {
		client, err := blobstore.New(cfg.StorageURL, cfg.StorageAccessKey, cfg.StorageSecretKey, cfg.StorageContainer)
		if err != nil {
			log.Fatal().Err(err).Msg("Error initializing blob storage")
		}
		archiver = client
		log.Info().Str("container", cfg.StorageContainer).Msg("Archival enabled")
	}

	ingestor := ingest.New(extractor.Extract, splitter.New(), embedder, store, archiver)
	server := api.NewServer(ingestor)

	log.Info().Str("addr", *addr).Msg("Starting ingestion server")
	if err := http.ListenAndServe(*addr, server.Routes()); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
