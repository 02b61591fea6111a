package locker

import (
	"context"
	"symptomix-service/internal/app/contracts"
	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/exceptions"
	"symptomix-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// RedisLocker is a CollectionLocker shared by every instance pointing at the
// same redis. The lock TTL bounds how long a crashed holder can block others.
type RedisLocker struct {
	lockService    contracts.LockerService
	log            *zap.Logger
	acquireTimeout time.Duration
	lockTTL        time.Duration
	pollInterval   time.Duration
}

func NewRedisLocker(lockService contracts.LockerService, logger *zap.Logger, acquireTimeout, lockTTL, pollInterval time.Duration) *RedisLocker {
	return &RedisLocker{
		lockService:    lockService,
		log:            logger,
		acquireTimeout: acquireTimeout,
		lockTTL:        lockTTL,
		pollInterval:   pollInterval,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, collection string) (func(), error) {
	key := constvars.LockKeyPrefixCollection + collection

	acquireCtx, cancel := context.WithTimeout(ctx, l.acquireTimeout)
	defer cancel()

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		acquired, lockValue, err := l.lockService.TryLock(acquireCtx, key, l.lockTTL)
		if err != nil {
			return nil, err
		}
		if acquired {
			releaseCtx := context.WithoutCancel(ctx)
			var once sync.Once
			return func() {
				once.Do(func() {
					if err := l.lockService.Unlock(releaseCtx, key, lockValue); err != nil {
						l.log.Error("RedisLocker.Lock error releasing collection lock",
							zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(releaseCtx)),
							zap.String(constvars.LoggingCollectionKey, collection),
							zap.Error(err),
						)
					}
				})
			}, nil
		}

		select {
		case <-acquireCtx.Done():
			l.log.Warn("RedisLocker.Lock timed out waiting for collection lock",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingCollectionKey, collection),
			)
			return nil, exceptions.ErrCollectionLockTimeout(acquireCtx.Err(), collection)
		case <-ticker.C:
		}
	}
}
