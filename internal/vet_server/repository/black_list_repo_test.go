package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// редис на карте: хватает для проверки ключей и TTL черного списка
type fakeCache struct {
	values map[string]interface{}
	ttls   map[string]time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]interface{}{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.values[key] = value
	f.ttls[key] = expiration
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	delete(f.ttls, key)
	return nil
}

func (f *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.values[key]
	return ok, nil
}

func (f *fakeCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	f.ttls[key] = expiration
	return nil
}

func (f *fakeCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	return f.ttls[key], nil
}

func (f *fakeCache) Close() error { return nil }

func TestNewBlackListRepo(t *testing.T) {
	t.Run("nil кэш не допускается", func(t *testing.T) {
		_, err := NewBlackListRepo(nil, "vet_service")
		assert.Error(t, err)
	})

	t.Run("пустой префикс не допускается", func(t *testing.T) {
		_, err := NewBlackListRepo(newFakeCache(), "")
		assert.Error(t, err)
	})
}

func TestBlackList(t *testing.T) {
	ctx := context.Background()

	t.Run("добавленный JTI находится, TTL передан в кэш", func(t *testing.T) {
		cache := newFakeCache()
		repo, err := NewBlackListRepo(cache, "vet_service")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assert.NoError(t, repo.AddToBlacklist(ctx, "jti-123", time.Hour))

		revoked, err := repo.IsBlacklisted(ctx, "jti-123")
		assert.NoError(t, err)
		assert.True(t, revoked)

		// ключ строится по схеме <prefix>:blacklist:<JTI>
		assert.Contains(t, cache.values, "vet_service:blacklist:jti-123")
		assert.Equal(t, time.Hour, cache.ttls["vet_service:blacklist:jti-123"])
	})

	t.Run("неизвестный JTI не в списке", func(t *testing.T) {
		repo, err := NewBlackListRepo(newFakeCache(), "vet_service")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		revoked, err := repo.IsBlacklisted(ctx, "jti-unknown")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("истекший токен не сохраняется", func(t *testing.T) {
		cache := newFakeCache()
		repo, err := NewBlackListRepo(cache, "vet_service")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assert.NoError(t, repo.AddToBlacklist(ctx, "jti-expired", -time.Minute))
		assert.Empty(t, cache.values)
	})

	t.Run("отмена контекста прерывает операции", func(t *testing.T) {
		repo, err := NewBlackListRepo(newFakeCache(), "vet_service")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		assert.Error(t, repo.AddToBlacklist(cancelled, "jti", time.Hour))
		_, err = repo.IsBlacklisted(cancelled, "jti")
		assert.Error(t, err)
	})
}
