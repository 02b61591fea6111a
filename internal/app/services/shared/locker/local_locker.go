package locker

import (
	"context"
	"symptomix-service/internal/pkg/exceptions"
	"sync"
	"time"
)

// LocalLocker serializes writers inside one process with a single-slot
// semaphore per collection name.
type LocalLocker struct {
	mu             sync.Mutex
	slots          map[string]chan struct{}
	acquireTimeout time.Duration
}

func NewLocalLocker(acquireTimeout time.Duration) *LocalLocker {
	return &LocalLocker{
		slots:          make(map[string]chan struct{}),
		acquireTimeout: acquireTimeout,
	}
}

func (l *LocalLocker) slot(collection string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[collection]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[collection] = slot
	}
	return slot
}

func (l *LocalLocker) Lock(ctx context.Context, collection string) (func(), error) {
	slot := l.slot(collection)

	ctx, cancel := context.WithTimeout(ctx, l.acquireTimeout)
	defer cancel()

	select {
	case slot <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() { <-slot })
		}, nil
	case <-ctx.Done():
		return nil, exceptions.ErrCollectionLockTimeout(ctx.Err(), collection)
	}
}
