package recordstore

import (
	"context"
	"errors"
	"os"
	"symptomix-service/internal/pkg/queries"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Document", func(t *testing.T) {
		backend := NewFileBackend(t.TempDir())
		_, err := backend.Read(ctx, "users")
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("Write Then Read Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		backend := NewFileBackend(dir)

		require.NoError(t, backend.Write(ctx, "users", []byte(`[{"id":"1"}]`)))
		require.NoError(t, backend.Write(ctx, "users", []byte(`[{"id":"2"}]`)))

		content, err := backend.Read(ctx, "users")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"2"}]`, string(content))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "users.json", entries[0].Name())
	})

	t.Run("Creates Missing Directory", func(t *testing.T) {
		dir := t.TempDir() + "/nested/data"
		backend := NewFileBackend(dir)
		require.NoError(t, backend.Write(ctx, "assessments", []byte("[]")))
	})
}

func TestPostgresBackend(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*PostgresBackend, sqlmock.Sqlmock) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		backend := NewPostgresBackend(db)
		backend.now = func() time.Time { return fixed }
		return backend, mock
	}

	t.Run("Read Existing Collection", func(t *testing.T) {
		backend, mock := setup(t)
		mock.ExpectQuery(queries.GetRecordCollectionContent).
			WithArgs("users").
			WillReturnRows(sqlmock.NewRows([]string{"content"}).AddRow(`[{"id":"1"}]`))

		content, err := backend.Read(ctx, "users")

		require.NoError(t, err)
		assert.Equal(t, `[{"id":"1"}]`, string(content))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Read Missing Collection", func(t *testing.T) {
		backend, mock := setup(t)
		mock.ExpectQuery(queries.GetRecordCollectionContent).
			WithArgs("users").
			WillReturnRows(sqlmock.NewRows([]string{"content"}))

		_, err := backend.Read(ctx, "users")

		assert.ErrorIs(t, err, ErrDocumentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Write Upserts Row", func(t *testing.T) {
		backend, mock := setup(t)
		mock.ExpectExec(queries.UpsertRecordCollection).
			WithArgs("assessments", "[]", fixed).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, backend.Write(ctx, "assessments", []byte("[]")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Write Error Propagates", func(t *testing.T) {
		backend, mock := setup(t)
		mock.ExpectExec(queries.UpsertRecordCollection).
			WithArgs("assessments", "[]", fixed).
			WillReturnError(errors.New("connection reset"))

		assert.Error(t, backend.Write(ctx, "assessments", []byte("[]")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ensure Schema", func(t *testing.T) {
		backend, mock := setup(t)
		mock.ExpectExec(queries.CreateRecordCollectionsTable).WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, backend.EnsureSchema(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
