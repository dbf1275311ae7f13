package service

import (
	"context"
	"testing"
	"time"
	"vet_service/internal/domain"
	"vet_service/internal/jwt_service"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "service-test-secret-0123456789abcdefgh"

// фейковый репозиторий пользователей на карте
type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) CheckIfInBaseByEmail(ctx context.Context, email string) (int64, bool, error) {
	if u, ok := f.users[email]; ok {
		return u.ID, true, nil
	}
	return 0, false, nil
}

func (f *fakeUserRepo) AddUser(ctx context.Context, user *domain.User) (int64, error) {
	if _, ok := f.users[user.Email]; ok {
		return -1, domain.ErrUserAlreadyExists
	}
	stored := *user
	stored.ID = f.nextID
	f.nextID++
	f.users[user.Email] = &stored
	return stored.ID, nil
}

func (f *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.users[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// черный список, который запоминает отозванные JTI
type fakeBlackList struct {
	revoked map[string]time.Duration
}

func (f *fakeBlackList) AddToBlacklist(ctx context.Context, tokenJTI string, ttl time.Duration) error {
	f.revoked[tokenJTI] = ttl
	return nil
}

func (f *fakeBlackList) IsBlacklisted(ctx context.Context, tokenJTI string) (bool, error) {
	_, ok := f.revoked[tokenJTI]
	return ok, nil
}

func newTestAuthService(repo *fakeUserRepo, blackList *fakeBlackList) (*AuthService, *jwt_service.JWTService) {
	cfg := &jwt_service.JWTConfig{
		Secret:   testSecret,
		TokenExp: 12 * time.Hour,
		Issuer:   "vet_service",
	}
	jwtSvc := jwt_service.NewJWTService(cfg)
	if blackList != nil {
		return NewAuthService(repo, jwtSvc, blackList, cfg), jwtSvc
	}
	return NewAuthService(repo, jwtSvc, nil, cfg), jwtSvc
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("успешная регистрация", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc, jwtSvc := newTestAuthService(repo, nil)

		payload, token, err := svc.Register(ctx, "nuevo@vet.com", "secret-password", "3001112233", "Calle 1 #2-3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assert.Equal(t, "nuevo@vet.com", payload.Email)
		assert.Equal(t, int64(1), payload.ID)

		// пароль в базе лежит только в виде bcrypt-хэша
		stored := repo.users["nuevo@vet.com"]
		assert.NotEqual(t, "secret-password", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-password")))
		assert.False(t, stored.IsAdmin, "new users are never admins")

		// токен подписан и несёт безопасную нагрузку
		claims, err := jwtSvc.VerifyToken(token)
		if err != nil {
			t.Fatalf("token must verify: %v", err)
		}
		assert.Equal(t, payload.ID, claims.UserID)
		assert.Equal(t, payload.Email, claims.Email)
	})

	t.Run("дубликат по email", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc, _ := newTestAuthService(repo, nil)

		_, _, err := svc.Register(ctx, "dup@vet.com", "password-1", "", "")
		assert.NoError(t, err)

		_, _, err = svc.Register(ctx, "dup@vet.com", "password-2", "", "")
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

		// запись не перезаписана
		assert.Len(t, repo.users, 1)
	})

	t.Run("без пароля регистрация отклоняется до хэширования", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc, _ := newTestAuthService(repo, nil)

		_, _, err := svc.Register(ctx, "sin-clave@vet.com", "", "", "")
		assert.ErrorIs(t, err, domain.ErrPasswordRequired)
		assert.Empty(t, repo.users, "no record may be created without a password")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AuthService, *jwt_service.JWTService, *fakeUserRepo) {
		repo := newFakeUserRepo()
		svc, jwtSvc := newTestAuthService(repo, nil)
		_, _, err := svc.Register(ctx, "known@vet.com", "correct-password", "300", "dir")
		if err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
		return svc, jwtSvc, repo
	}

	t.Run("неизвестный email", func(t *testing.T) {
		svc, _, _ := setup(t)
		_, _, err := svc.Login(ctx, "unknown@vet.com", "whatever")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("пароль не передан", func(t *testing.T) {
		svc, _, _ := setup(t)
		_, _, err := svc.Login(ctx, "known@vet.com", "")
		assert.ErrorIs(t, err, domain.ErrPasswordRequired)
	})

	t.Run("неверный пароль", func(t *testing.T) {
		svc, _, _ := setup(t)
		_, _, err := svc.Login(ctx, "known@vet.com", "wrong-password")
		assert.ErrorIs(t, err, domain.ErrInvalidPassword)
	})

	t.Run("успешный логин", func(t *testing.T) {
		svc, jwtSvc, _ := setup(t)
		payload, token, err := svc.Login(ctx, "known@vet.com", "correct-password")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assert.Equal(t, "known@vet.com", payload.Email)

		claims, err := jwtSvc.VerifyToken(token)
		assert.NoError(t, err)
		assert.Equal(t, payload.ID, claims.UserID)
	})
}

func TestRevokeToken(t *testing.T) {
	ctx := context.Background()

	t.Run("валидный токен попадает в черный список", func(t *testing.T) {
		repo := newFakeUserRepo()
		blackList := &fakeBlackList{revoked: map[string]time.Duration{}}
		svc, jwtSvc := newTestAuthService(repo, blackList)

		_, token, err := svc.Register(ctx, "bye@vet.com", "password", "", "")
		if err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}

		if err := svc.RevokeToken(ctx, token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, _ := jwtSvc.VerifyToken(token)
		revoked, _ := blackList.IsBlacklisted(ctx, claims.ID)
		assert.True(t, revoked)

		// TTL в черном списке не превышает остаток жизни токена
		assert.LessOrEqual(t, blackList.revoked[claims.ID], 12*time.Hour)
	})

	t.Run("испорченный токен отзыва не требует", func(t *testing.T) {
		repo := newFakeUserRepo()
		blackList := &fakeBlackList{revoked: map[string]time.Duration{}}
		svc, _ := newTestAuthService(repo, blackList)

		assert.NoError(t, svc.RevokeToken(ctx, "garbage-token"))
		assert.Empty(t, blackList.revoked)
	})

	t.Run("без черного списка отзыв - no-op", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc, _ := newTestAuthService(repo, nil)
		assert.NoError(t, svc.RevokeToken(ctx, "anything"))
	})
}
