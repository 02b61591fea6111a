package contracts

import (
	"context"
	"symptomix-service/internal/app/models"
	"time"
)

// RecordStore keeps named collections of entities, one durable document per
// collection.
type RecordStore[T models.Entity] interface {
	LoadAll(ctx context.Context, collection string) []T
	SaveAll(ctx context.Context, collection string, records []T) error
	GetByID(ctx context.Context, collection, id string) (T, bool)
	Add(ctx context.Context, collection string, record T) (string, error)
	Update(ctx context.Context, collection, id string, record T) (bool, error)
	Delete(ctx context.Context, collection, id string) (bool, error)
	Find(ctx context.Context, collection string, predicate func(T) bool) []T
}

// DocumentBackend reads and writes the raw JSON document of a collection.
// Read returns ErrDocumentNotFound when the collection was never written.
type DocumentBackend interface {
	Read(ctx context.Context, collection string) ([]byte, error)
	Write(ctx context.Context, collection string, content []byte) error
	Name() string
}

// CollectionLocker serializes writers of one collection. The returned func
// releases the lock.
type CollectionLocker interface {
	Lock(ctx context.Context, collection string) (func(), error)
}

type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
