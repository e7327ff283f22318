package vectorstore

import (
	"context"
	"fmt"
	"runtime"

	"github.com/philippgille/chromem-go"

	"document-ingest/internal/helper"
)

const compress = false

// LocalStore is a file-backed chromem index under a fixed folder.
// Opening it creates the folder if absent, otherwise loads the
// persisted entries so new writes append. There is no cross-process
// locking; concurrent writers to the same path can lose entries.
type LocalStore struct {
	db         *chromem.DB
	collection *chromem.Collection
	path       string
}

// NewLocalStore opens or creates the index at path.
func NewLocalStore(path, collectionName string) (*LocalStore, error) {
	db, err := chromem.NewPersistentDB(path, compress)
	if err != nil {
		return nil, fmt.Errorf("failed to open local index: %v", err)
	}

	collection, err := db.GetOrCreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create/get collection: %v", err)
	}

	return &LocalStore{
		db:         db,
		collection: collection,
		path:       path,
	}, nil
}

// Upsert appends entries under fresh random IDs and persists them.
func (s *LocalStore) Upsert(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]chromem.Document, 0, len(entries))
	for _, e := range entries {
		id, err := helper.GenerateUUID()
		if err != nil {
			return err
		}
		docs = append(docs, chromem.Document{
			ID:        id,
			Content:   e.Content,
			Metadata:  e.Metadata,
			Embedding: e.Embedding,
		})
	}

	if err := s.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to add documents: %v", err)
	}
	return nil
}

// Count returns the number of entries in the collection.
func (s *LocalStore) Count() int {
	return s.collection.Count()
}
