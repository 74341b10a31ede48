package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/models"
)

// fakeCache is an in-memory [UserCache] that can be switched into a failing
// mode.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	fail    bool
	gets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.fail {
		return nil, errors.New("connection refused")
	}
	v, ok := f.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("connection refused")
	}
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("connection refused")
	}
	delete(f.entries, key)
	return nil
}

// countingRepo counts FindUserByUID calls reaching the wrapped repository.
type countingRepo struct {
	UserRepository
	finds int
}

func (c *countingRepo) FindUserByUID(ctx context.Context, uid int64) (models.User, error) {
	c.finds++
	return c.UserRepository.FindUserByUID(ctx, uid)
}

func newCachedFixture(t *testing.T) (UserRepository, *countingRepo, *fakeCache) {
	t.Helper()
	inner := &countingRepo{UserRepository: NewMemoryUserRepository(logger.Nop())}
	_, err := inner.CreateUser(context.Background(), models.UID{}, models.FixtureUser())
	require.NoError(t, err)

	cache := newFakeCache()
	return NewCachedUserRepository(inner, cache, logger.Nop()), inner, cache
}

func TestCachedRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	repo, inner, cache := newCachedFixture(t)

	first, err := repo.FindUserByUID(ctx, 1)
	require.NoError(t, err)
	second, err := repo.FindUserByUID(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.finds)
	assert.Contains(t, cache.entries, "user:1")
}

func TestCachedRepository_MissIsNotCached(t *testing.T) {
	ctx := context.Background()
	repo, _, cache := newCachedFixture(t)

	_, err := repo.FindUserByUID(ctx, 42)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NotContains(t, cache.entries, "user:42")
}

func TestCachedRepository_UpdateInvalidates(t *testing.T) {
	ctx := context.Background()
	repo, inner, _ := newCachedFixture(t)

	_, err := repo.FindUserByUID(ctx, 1)
	require.NoError(t, err)

	_, err = repo.UpdateUser(ctx, models.UserUpdate{UserUID: models.NewUID(1), UserPassword: "rotated"})
	require.NoError(t, err)

	found, err := repo.FindUserByUID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "rotated", found.UserPassword)
	assert.Equal(t, 2, inner.finds)
}

func TestCachedRepository_CacheOutageFallsBack(t *testing.T) {
	ctx := context.Background()
	repo, inner, cache := newCachedFixture(t)
	cache.fail = true

	found, err := repo.FindUserByUID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.UserUID)

	_, err = repo.UpdateUser(ctx, models.UserUpdate{UserUID: models.NewUID(1), Missions: []int64{}})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.finds)
}

func TestCachedRepository_CorruptEntryIsRefetched(t *testing.T) {
	ctx := context.Background()
	repo, inner, cache := newCachedFixture(t)
	cache.entries["user:1"] = []byte("{not json")

	found, err := repo.FindUserByUID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.UserUID)
	assert.Equal(t, 1, inner.finds)

	var cached models.User
	require.NoError(t, json.Unmarshal(cache.entries["user:1"], &cached))
	assert.Equal(t, found, cached)
}

func TestCachedRepository_PassThrough(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := newCachedFixture(t)

	created, err := repo.CreateUser(ctx, models.UID{}, models.NewUser(0, "pw"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.UserUID)

	total, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
