package queries

const (
	CreateRecordCollectionsTable = `
		CREATE TABLE IF NOT EXISTS record_collections (
			name TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`

	GetRecordCollectionContent = "SELECT content FROM record_collections WHERE name = $1"

	UpsertRecordCollection = `
		INSERT INTO record_collections (name, content, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at
	`
)
