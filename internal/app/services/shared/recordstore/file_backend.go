package recordstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"symptomix-service/internal/pkg/constvars"
)

// FileBackend keeps each collection as <dir>/<collection>.json.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) Name() string {
	return constvars.StoreBackendFile
}

func (b *FileBackend) path(collection string) string {
	return filepath.Join(b.dir, collection+constvars.RecordCollectionFileExtension)
}

func (b *FileBackend) Read(ctx context.Context, collection string) ([]byte, error) {
	content, err := os.ReadFile(b.path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrDocumentNotFound
	}
	return content, err
}

// Write replaces the document through a temp file and a rename so readers
// never observe a partial write.
func (b *FileBackend) Write(ctx context.Context, collection string, content []byte) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(b.dir, collection+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, b.path(collection))
}
