package embedding

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"document-ingest/internal/models"
)

// NewCloudEmbedder builds an embedder against an OpenAI-compatible
// endpoint. The token may carry a "Bearer " prefix from config.
func NewCloudEmbedder(baseURL, token, model string) (*embeddings.EmbedderImpl, error) {
	log.Debug().
		Str("base_url", baseURL).
		Str("embedding_model", model).
		Msg("Initializing cloud embedder")

	llm, err := openai.New(
		openai.WithBaseURL(baseURL),
		openai.WithToken(strings.TrimPrefix(token, "Bearer ")),
		openai.WithEmbeddingModel(model),
	)
	if err != nil {
		return nil, err
	}
	return embeddings.NewEmbedder(llm)
}

// NewLocalEmbedder builds an embedder against a local Ollama server,
// always using the fixed local model so the on-disk index stays in a
// single embedding space.
func NewLocalEmbedder(serverURL string) (*embeddings.EmbedderImpl, error) {
	log.Debug().
		Str("server_url", serverURL).
		Str("embedding_model", models.LocalEmbeddingModel).
		Msg("Initializing local embedder")

	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(models.LocalEmbeddingModel),
	)
	if err != nil {
		return nil, err
	}
	return embeddings.NewEmbedder(llm)
}
