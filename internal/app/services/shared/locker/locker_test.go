package locker

import (
	"context"
	"errors"
	"net/http"
	"symptomix-service/internal/app/contracts"
	"symptomix-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

var _ contracts.RedisRepository = (*MockRedisRepository)(nil)

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func TestLocalLocker(t *testing.T) {
	t.Run("Serializes Holders Of The Same Collection", func(t *testing.T) {
		locker := NewLocalLocker(5 * time.Second)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			inside  int
			maxSeen int
		)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := locker.Lock(context.Background(), "assessments")
				require.NoError(t, err)
				defer release()

				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxSeen)
	})

	t.Run("Different Collections Do Not Block Each Other", func(t *testing.T) {
		locker := NewLocalLocker(50 * time.Millisecond)

		releaseAssessments, err := locker.Lock(context.Background(), "assessments")
		require.NoError(t, err)
		defer releaseAssessments()

		releaseUsers, err := locker.Lock(context.Background(), "users")
		require.NoError(t, err)
		releaseUsers()
	})

	t.Run("Times Out While Held", func(t *testing.T) {
		locker := NewLocalLocker(20 * time.Millisecond)

		release, err := locker.Lock(context.Background(), "assessments")
		require.NoError(t, err)
		defer release()

		_, err = locker.Lock(context.Background(), "assessments")
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
	})

	t.Run("Release Is Idempotent", func(t *testing.T) {
		locker := NewLocalLocker(20 * time.Millisecond)

		release, err := locker.Lock(context.Background(), "users")
		require.NoError(t, err)
		release()
		release()

		again, err := locker.Lock(context.Background(), "users")
		require.NoError(t, err)
		again()
	})
}

func TestLockService(t *testing.T) {
	ctx := context.Background()
	key := "symptomix:lock:collection:assessments"

	t.Run("TryLock Acquires With Token", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", mock.Anything, key, mock.AnythingOfType("string"), time.Second).Return(true, nil)

		service := NewLockService(repo, zap.NewNop())
		acquired, token, err := service.TryLock(ctx, key, time.Second)

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, token)
		repo.AssertExpectations(t)
	})

	t.Run("TryLock Propagates Redis Errors", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", mock.Anything, key, mock.Anything, time.Second).Return(false, errors.New("connection refused"))

		service := NewLockService(repo, zap.NewNop())
		acquired, token, err := service.TryLock(ctx, key, time.Second)

		assert.Error(t, err)
		assert.False(t, acquired)
		assert.Empty(t, token)
	})

	t.Run("Unlock Deletes Owned Lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", mock.Anything, key).Return(`"token-1"`, nil)
		repo.On("Delete", mock.Anything, key).Return(nil)

		service := NewLockService(repo, zap.NewNop())
		require.NoError(t, service.Unlock(ctx, key, "token-1"))
		repo.AssertExpectations(t)
	})

	t.Run("Unlock Refuses Foreign Lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", mock.Anything, key).Return(`"token-2"`, nil)

		service := NewLockService(repo, zap.NewNop())
		assert.Error(t, service.Unlock(ctx, key, "token-1"))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unlock Of Expired Lock Is A No-op", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", mock.Anything, key).Return("", nil)

		service := NewLockService(repo, zap.NewNop())
		assert.NoError(t, service.Unlock(ctx, key, "token-1"))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestRedisLocker(t *testing.T) {
	key := "symptomix:lock:collection:assessments"

	t.Run("Polls Until Acquired And Releases With Token", func(t *testing.T) {
		service := new(MockLockerService)
		service.On("TryLock", mock.Anything, key, time.Minute).Return(false, "", nil).Twice()
		service.On("TryLock", mock.Anything, key, time.Minute).Return(true, "token-1", nil).Once()
		service.On("Unlock", mock.Anything, key, "token-1").Return(nil).Once()

		locker := NewRedisLocker(service, zap.NewNop(), time.Second, time.Minute, time.Millisecond)
		release, err := locker.Lock(context.Background(), "assessments")
		require.NoError(t, err)

		release()
		release()
		service.AssertExpectations(t)
	})

	t.Run("Gives Up After Acquire Timeout", func(t *testing.T) {
		service := new(MockLockerService)
		service.On("TryLock", mock.Anything, key, time.Minute).Return(false, "", nil)

		locker := NewRedisLocker(service, zap.NewNop(), 20*time.Millisecond, time.Minute, 5*time.Millisecond)
		release, err := locker.Lock(context.Background(), "assessments")

		assert.Nil(t, release)
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
		service.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Redis Errors Abort Acquisition", func(t *testing.T) {
		service := new(MockLockerService)
		service.On("TryLock", mock.Anything, key, time.Minute).Return(false, "", errors.New("connection refused")).Once()

		locker := NewRedisLocker(service, zap.NewNop(), time.Second, time.Minute, time.Millisecond)
		_, err := locker.Lock(context.Background(), "assessments")

		assert.EqualError(t, err, "connection refused")
		service.AssertExpectations(t)
	})
}
