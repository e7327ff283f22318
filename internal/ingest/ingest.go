package ingest

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"

	"document-ingest/internal/models"
	"document-ingest/internal/vectorstore"
)

const archiveContentType = "application/pdf"

// ExtractFunc turns an uploaded file into a text document.
type ExtractFunc func(filename string, data []byte) (models.Document, error)

// Splitter cuts a document's text into ordered chunks.
type Splitter interface {
	Split(text string) ([]string, error)
}

// Archiver uploads the raw file bytes for archival.
type Archiver interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) error
}

// Ingestor runs the ingestion pipeline: extract, split, embed, upsert
// and optionally archive. Each step runs sequentially; the first
// failure aborts the rest. A store write followed by a failed archive
// is still reported as a failure even though the entries remain
// persisted.
type Ingestor struct {
	extract  ExtractFunc
	splitter Splitter
	embedder embeddings.Embedder
	store    vectorstore.Store
	archiver Archiver
}

// New builds an Ingestor. archiver may be nil, in which case the
// archival step is skipped.
func New(extract ExtractFunc, splitter Splitter, embedder embeddings.Embedder, store vectorstore.Store, archiver Archiver) *Ingestor {
	return &Ingestor{
		extract:  extract,
		splitter: splitter,
		embedder: embedder,
		store:    store,
		archiver: archiver,
	}
}

// Ingest processes one uploaded file end to end.
func (i *Ingestor) Ingest(ctx context.Context, filename string, data []byte) error {
	doc, err := i.extract(filename, data)
	if err != nil {
		return err
	}

	chunks, err := i.splitter.Split(doc.Text)
	if err != nil {
		return err
	}

	if len(chunks) == 0 {
		log.Info().Str("file", filename).Msg("No chunks generated from content")
	} else {
		vectors, err := i.embedder.EmbedDocuments(ctx, chunks)
		if err != nil {
			return err
		}
		if len(vectors) != len(chunks) {
			return fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
		}

		entries := make([]vectorstore.Entry, len(chunks))
		for n, chunk := range chunks {
			entries[n] = vectorstore.Entry{
				Content:   chunk,
				Metadata:  doc.Metadata,
				Embedding: vectors[n],
			}
		}

		if err := i.store.Upsert(ctx, entries); err != nil {
			return err
		}
		log.Info().Str("file", filename).Int("chunks", len(entries)).Msg("Stored chunk embeddings")
	}

	if i.archiver != nil {
		if err := i.archiver.Upload(ctx, filename, data, archiveContentType); err != nil {
			return err
		}
		log.Info().Str("file", filename).Msg("Archived original file")
	}

	return nil
}
