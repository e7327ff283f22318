package vectorstore

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"document-ingest/internal/models"
)

// DocumentRow is one persisted chunk in the cloud store. The vector
// dimension matches the default cloud embedding model.
type DocumentRow struct {
	bun.BaseModel `bun:"table:documents,alias:d"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Content       string    `bun:"content,notnull"`
	Embedding     []float32 `bun:"embedding,notnull,type:vector(1536)"`
	Source        string    `bun:"source_filename"`
}

// CloudStore writes chunk embeddings to a Postgres/pgvector database.
type CloudStore struct {
	db *bun.DB
}

// NewCloudStore connects to the database at dsn. When a separate key
// is provided (Supabase-style URL + key), the bun pgdriver connector
// carries it as the password; otherwise the DSN is opened as-is via
// lib/pq.
func NewCloudStore(dsn, key string, debug bool) (*CloudStore, error) {
	var sqldb *sql.DB
	if key != "" {
		sqldb = sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn), pgdriver.WithPassword(key)))
	} else {
		var err error
		sqldb, err = sql.Open("postgres", dsn)
		if err != nil {
			return nil, err
		}
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return &CloudStore{db: db}, nil
}

// Init creates the documents table if it does not exist.
func (s *CloudStore) Init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().Model((*DocumentRow)(nil)).IfNotExists().Exec(ctx)
	return err
}

// Upsert bulk-inserts all entries in one statement. IDs are assigned
// by the database.
func (s *CloudStore) Upsert(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]DocumentRow, len(entries))
	for i, e := range entries {
		rows[i] = DocumentRow{
			Content:   e.Content,
			Embedding: e.Embedding,
			Source:    e.Metadata[models.MetadataKeySource],
		}
	}
	_, err := s.db.NewInsert().Model(&rows).Exec(ctx)
	return err
}

func (s *CloudStore) Close() error {
	return s.db.Close()
}
