package recordstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"symptomix-service/internal/app/contracts"
	"symptomix-service/internal/app/models"
	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/exceptions"
	"symptomix-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrDocumentNotFound is returned by backends for a collection that was
// never written.
var ErrDocumentNotFound = errors.New("collection document not found")

var collectionNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type recordStore[T models.Entity] struct {
	backend contracts.DocumentBackend
	locker  contracts.CollectionLocker
	Log     *zap.Logger
	now     func() time.Time
}

func NewRecordStore[T models.Entity](backend contracts.DocumentBackend, locker contracts.CollectionLocker, logger *zap.Logger) contracts.RecordStore[T] {
	return &recordStore[T]{
		backend: backend,
		locker:  locker,
		Log:     logger,
		now:     time.Now,
	}
}

// LoadAll never fails. Absent, unreadable and corrupt collections all read
// as empty.
func (s *recordStore[T]) LoadAll(ctx context.Context, collection string) []T {
	requestID := utils.GetRequestID(ctx)

	if err := validateCollectionName(collection); err != nil {
		s.Log.Error("recordStore.LoadAll invalid collection name",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Error(err),
		)
		return []T{}
	}

	records, err := s.load(ctx, collection)
	if err != nil {
		s.Log.Error("recordStore.LoadAll error reading collection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.String(constvars.LoggingBackendKey, s.backend.Name()),
			zap.Error(err),
		)
		return []T{}
	}
	return records
}

// load reads the collection. A missing or corrupt document is empty; any
// other backend failure is returned so writers never overwrite data they
// could not read.
func (s *recordStore[T]) load(ctx context.Context, collection string) ([]T, error) {
	requestID := utils.GetRequestID(ctx)

	content, err := s.backend.Read(ctx, collection)
	if errors.Is(err, ErrDocumentNotFound) {
		s.Log.Debug("recordStore.load collection not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collection),
		)
		return []T{}, nil
	}
	if err != nil {
		return nil, exceptions.ErrRecordStoreRead(err, collection)
	}

	var decoded []T
	if err := json.Unmarshal(content, &decoded); err != nil {
		s.Log.Warn("recordStore.load corrupt collection treated as empty",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.String(constvars.LoggingBackendKey, s.backend.Name()),
			zap.Error(err),
		)
		return []T{}, nil
	}

	var zero T
	records := make([]T, 0, len(decoded))
	for _, record := range decoded {
		if record != zero {
			records = append(records, record)
		}
	}
	return records, nil
}

func (s *recordStore[T]) SaveAll(ctx context.Context, collection string, records []T) error {
	release, err := s.lock(ctx, collection)
	if err != nil {
		return err
	}
	defer release()

	return s.saveAll(ctx, collection, records)
}

func (s *recordStore[T]) GetByID(ctx context.Context, collection, id string) (T, bool) {
	var zero T
	for _, record := range s.LoadAll(ctx, collection) {
		if record.GetID() == id {
			return record, true
		}
	}
	return zero, false
}

// Add ignores any id already set on record and assigns a fresh one.
func (s *recordStore[T]) Add(ctx context.Context, collection string, record T) (string, error) {
	var zero T
	if record == zero {
		return "", exceptions.ErrRecordStoreWrite(fmt.Errorf("nil record"), collection)
	}

	release, err := s.lock(ctx, collection)
	if err != nil {
		return "", err
	}
	defer release()

	records, err := s.load(ctx, collection)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	record.SetID(id)
	if stamped, ok := any(record).(models.CreationStamped); ok {
		stamped.SetCreatedAt(s.now().UTC())
	}

	if err := s.saveAll(ctx, collection, append(records, record)); err != nil {
		return "", err
	}

	s.Log.Debug("recordStore.Add succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCollectionKey, collection),
		zap.String(constvars.LoggingRecordIDKey, id),
	)
	return id, nil
}

// Update replaces the first record with the given id. A miss reports false
// without an error.
func (s *recordStore[T]) Update(ctx context.Context, collection, id string, record T) (bool, error) {
	var zero T
	if record == zero {
		return false, exceptions.ErrRecordStoreWrite(fmt.Errorf("nil record"), collection)
	}

	release, err := s.lock(ctx, collection)
	if err != nil {
		return false, err
	}
	defer release()

	records, err := s.load(ctx, collection)
	if err != nil {
		return false, err
	}
	index := indexOf(records, id)
	if index < 0 {
		return false, nil
	}

	record.SetID(id)
	if stamped, ok := any(record).(models.UpdateStamped); ok {
		stamped.SetUpdatedAt(s.now().UTC())
	}
	records[index] = record

	if err := s.saveAll(ctx, collection, records); err != nil {
		return false, err
	}
	return true, nil
}

func (s *recordStore[T]) Delete(ctx context.Context, collection, id string) (bool, error) {
	release, err := s.lock(ctx, collection)
	if err != nil {
		return false, err
	}
	defer release()

	records, err := s.load(ctx, collection)
	if err != nil {
		return false, err
	}
	index := indexOf(records, id)
	if index < 0 {
		return false, nil
	}

	records = append(records[:index], records[index+1:]...)
	if err := s.saveAll(ctx, collection, records); err != nil {
		return false, err
	}
	return true, nil
}

func (s *recordStore[T]) Find(ctx context.Context, collection string, predicate func(T) bool) []T {
	matches := []T{}
	for _, record := range s.LoadAll(ctx, collection) {
		if predicate(record) {
			matches = append(matches, record)
		}
	}
	return matches
}

func (s *recordStore[T]) lock(ctx context.Context, collection string) (func(), error) {
	if err := validateCollectionName(collection); err != nil {
		return nil, err
	}
	return s.locker.Lock(ctx, collection)
}

// saveAll expects the collection lock to be held.
func (s *recordStore[T]) saveAll(ctx context.Context, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}

	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return exceptions.ErrRecordStoreWrite(err, collection)
	}

	if err := s.backend.Write(ctx, collection, content); err != nil {
		customErr := exceptions.ErrRecordStoreWrite(err, collection)
		s.Log.Error("recordStore.saveAll error writing collection",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.String(constvars.LoggingBackendKey, s.backend.Name()),
			zap.Int(constvars.LoggingRecordCountKey, len(records)),
			zap.Error(customErr),
		)
		return customErr
	}
	return nil
}

func indexOf[T models.Entity](records []T, id string) int {
	for i, record := range records {
		if record.GetID() == id {
			return i
		}
	}
	return -1
}

func validateCollectionName(collection string) error {
	if !collectionNamePattern.MatchString(collection) {
		return exceptions.ErrInvalidCollectionName(nil, collection)
	}
	return nil
}
