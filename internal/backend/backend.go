package backend

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"

	"document-ingest/internal/config"
	"document-ingest/internal/embedding"
	"document-ingest/internal/models"
	"document-ingest/internal/vectorstore"
)

// New constructs the embedder and vector store for the configured
// backend. The two must always come from the same branch: a local
// index written with local embeddings would be silently corrupted by
// cloud vectors, and vice versa.
func New(ctx context.Context, cfg *config.Config) (embeddings.Embedder, vectorstore.Store, error) {
	log.Info().Stringer("backend", cfg.Backend()).Msg("Selecting ingestion backend")

	switch cfg.Backend() {
	case config.BackendCloud:
		embedder, err := embedding.NewCloudEmbedder(cfg.CloudEmbeddingURL, cfg.CloudEmbeddingKey, cfg.CloudEmbeddingModel)
		if err != nil {
			return nil, nil, err
		}
		store, err := vectorstore.NewCloudStore(cfg.DatabaseURL, cfg.DatabaseKey, cfg.DatabaseDebug)
		if err != nil {
			return nil, nil, err
		}
		if err := store.Init(ctx); err != nil {
			return nil, nil, err
		}
		return embedder, store, nil

	default:
		embedder, err := embedding.NewLocalEmbedder(cfg.OllamaURL)
		if err != nil {
			return nil, nil, err
		}
		store, err := vectorstore.NewLocalStore(models.LocalIndexPath, models.CollectionName)
		if err != nil {
			return nil, nil, err
		}
		return embedder, store, nil
	}
}
