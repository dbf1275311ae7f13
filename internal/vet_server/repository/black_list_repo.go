package repository

import (
	"context"
	"fmt"
	"time"
	authinterfaces "vet_service/internal/auth_interfaces"
	"vet_service/internal/redis"
)

// репозиторий черного списка отозванных токенов поверх redis.
// Токен без серверного состояния нельзя отозвать иначе: при логауте его JTI
// попадает сюда и живёт ровно до собственного истечения токена.
type BlackListRepository struct {
	cache  redis.RedisRepositoryInterface
	prefix string
}

// конструктор для репозитория черного списка
func NewBlackListRepo(cache redis.RedisRepositoryInterface, prefix string) (authinterfaces.BlackListRepository, error) {
	// Проверяем обязательные зависимости
	if cache == nil {
		return nil, fmt.Errorf("cache cannot be nil")
	}

	// Проверяем префикс
	if prefix == "" {
		return nil, fmt.Errorf("prefix cannot be empty")
	}
	return &BlackListRepository{
		cache:  cache,
		prefix: prefix,
	}, nil
}

// Добавление в черный список
// ключ: <prefix>:blacklist:<JTI>, значение: время истечения в unix timestamp
func (b *BlackListRepository) AddToBlacklist(ctx context.Context, tokenJTI string, ttl time.Duration) error {
	// проверяем отмену контекста
	if err := ctx.Err(); err != nil {
		return err
	}

	if ttl <= 0 {
		// токен уже истёк сам по себе, хранить нечего
		return nil
	}

	key := fmt.Sprintf("%s:blacklist:%s", b.prefix, tokenJTI)

	// Значение - время истечения в unix timestamp
	expiresAt := time.Now().UTC().Add(ttl).Unix()

	err := b.cache.Set(ctx, key, expiresAt, ttl)
	if err != nil {
		return fmt.Errorf("failed to add token to blacklist: %w", err)
	}
	return nil
}

// метод для проверки, есть ли такой JTI в черном списке
func (b *BlackListRepository) IsBlacklisted(ctx context.Context, tokenJTI string) (bool, error) {
	// проверяем отмену контекста
	if err := ctx.Err(); err != nil {
		return false, err
	}

	key := fmt.Sprintf("%s:blacklist:%s", b.prefix, tokenJTI)

	// Проверяем существование ключа
	exists, err := b.cache.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}

	return exists, nil
}
