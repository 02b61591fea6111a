package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/queries"
	"time"
)

// PostgresBackend keeps each collection as one row of record_collections.
type PostgresBackend struct {
	DB  *sql.DB
	now func() time.Time
}

func NewPostgresBackend(db *sql.DB) *PostgresBackend {
	return &PostgresBackend{
		DB:  db,
		now: time.Now,
	}
}

func (b *PostgresBackend) Name() string {
	return constvars.StoreBackendPostgres
}

func (b *PostgresBackend) EnsureSchema(ctx context.Context) error {
	_, err := b.DB.ExecContext(ctx, queries.CreateRecordCollectionsTable)
	return err
}

func (b *PostgresBackend) Read(ctx context.Context, collection string) ([]byte, error) {
	var content string
	err := b.DB.QueryRowContext(ctx, queries.GetRecordCollectionContent, collection).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDocumentNotFound
	} else if err != nil {
		return nil, err
	}
	return []byte(content), nil
}

func (b *PostgresBackend) Write(ctx context.Context, collection string, content []byte) error {
	_, err := b.DB.ExecContext(ctx, queries.UpsertRecordCollection, collection, string(content), b.now().UTC())
	return err
}
