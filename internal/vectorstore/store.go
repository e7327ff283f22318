package vectorstore

import "context"

// Entry is one (text, metadata, embedding) tuple to persist. Entries
// written with one embedding model must only ever be queried with the
// same model; the two Store implementations are therefore never mixed
// within a deployment.
type Entry struct {
	Content   string
	Metadata  map[string]string
	Embedding []float32
}

// Store persists chunk embeddings. Upsert assigns IDs internally; the
// same content written twice yields two independent entries.
type Store interface {
	Upsert(ctx context.Context, entries []Entry) error
}
