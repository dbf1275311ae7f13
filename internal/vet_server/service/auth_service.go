// описание сервисного слоя аутентификации
package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	authinterfaces "vet_service/internal/auth_interfaces"
	"vet_service/internal/domain"
	"vet_service/internal/jwt_service"

	"golang.org/x/crypto/bcrypt"
)

// описание интерфейса сервисного слоя аутентификации
type AuthServiceInterface interface {
	Register(ctx context.Context, email, password, phone, address string) (*domain.TokenPayload, string, error)
	Login(ctx context.Context, email, password string) (*domain.TokenPayload, string, error)
	RevokeToken(ctx context.Context, tokenString string) error
}

// описание структуры сервисного слоя
type AuthService struct {
	users     authinterfaces.UserRepoInterface
	jwt       jwt_service.JWTManager
	blackList authinterfaces.BlackListRepository // может быть nil, тогда отзыв токенов выключен
	tokenExp  time.Duration
	issuer    string
}

// Конструктор сервисного слоя аутентификации
func NewAuthService(users authinterfaces.UserRepoInterface, jwt jwt_service.JWTManager, blackList authinterfaces.BlackListRepository, cfg *jwt_service.JWTConfig) *AuthService {
	return &AuthService{
		users:     users,
		jwt:       jwt,
		blackList: blackList,
		tokenExp:  cfg.TokenExp,
		issuer:    cfg.Issuer,
	}
}

// Метод регистрации пользователя. Возвращает безопасную полезную нагрузку
// и подписанный токен сессии.
func (s *AuthService) Register(ctx context.Context, email, password, phone, address string) (*domain.TokenPayload, string, error) {
	// Проверяем не отменен ли контекст
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	// проверяем, есть ли юзер с таким е-маилом в базе
	_, isInBase, err := s.users.CheckIfInBaseByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check user by email: %w", err)
	}

	// если такой пользователь уже зарегистрирован, дубликаты не создаём
	if isInBase {
		return nil, "", domain.ErrUserAlreadyExists
	}

	// без пароля регистрацию не продолжаем: хэшер с пустым входом не вызывается,
	// запись с непригодным credential в базу не попадает
	if password == "" {
		return nil, "", domain.ErrPasswordRequired
	}

	// Хеширование пароля (bcrypt, cost 10)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	// собираем запись пользователя, новые пользователи никогда не админы
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Phone:        phone,
		Address:      address,
		IsAdmin:      false,
	}

	// пробуем добавить нового юзера в базу данных
	userID, err := s.users.AddUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, "", domain.ErrUserAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to add new user: %w", err)
	}
	user.ID = userID

	return s.issueSession(user)
}

// Метод логина пользователя: проверка пароля против хэша из базы
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.TokenPayload, string, error) {
	// Проверяем не отменен ли контекст
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	// ищем пользователя по емаилу
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}

	// пароль обязателен, но проверяется только после того, как пользователь найден
	if password == "" {
		return nil, "", domain.ErrPasswordRequired
	}

	// сверяем пароль с хэшем из базы
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidPassword
	}

	return s.issueSession(user)
}

// RevokeToken кладёт JTI валидного токена в черный список до его истечения.
// Если черный список не сконфигурирован или токен уже невалиден, делать нечего.
func (s *AuthService) RevokeToken(ctx context.Context, tokenString string) error {
	if s.blackList == nil || tokenString == "" {
		return nil
	}

	claims, err := s.jwt.VerifyToken(tokenString)
	if err != nil {
		// просроченный или испорченный токен отзывать не нужно
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	return s.blackList.AddToBlacklist(ctx, claims.ID, ttl)
}

// issueSession строит безопасную полезную нагрузку и подписывает токен сессии
func (s *AuthService) issueSession(user *domain.User) (*domain.TokenPayload, string, error) {
	payload := domain.NewTokenPayload(user)

	claims := jwt_service.NewClaims(s.tokenExp, payload.ID, payload.Email, payload.Phone, payload.Address, s.issuer)
	token, err := s.jwt.GenerateToken(claims)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return payload, token, nil
}
