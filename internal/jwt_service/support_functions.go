package jwt_service

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// создаём новый парсер, который учитывает метод шифрования и подтверждение срока действия
var parser = jwt.NewParser(
	jwt.WithValidMethods([]string{"HS256"}), // проверять только наличие метода шифрования HS256
	jwt.WithExpirationRequired(),            // проверка наличия срока действия токена
)

// LoadJWTConfig - загрузка конфига JWT. Время жизни берётся из yml файла
// (путь может быть пустым, тогда дефолт 12 часов), а секрет - ТОЛЬКО из
// переменной окружения JWT_SECRET. Дефолтного секрета нет: без него сервис
// не стартует.
func LoadJWTConfig(configPath string) (*JWTConfig, error) {
	config := &JWTConfig{
		TokenExp: 12 * time.Hour,
		Issuer:   "vet_service",
	}

	// если путь задан, читаем файл с настройками времени жизни
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("JWT config file not found: %w", err)
		}

		yamlFile, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read JWT config: %w", err)
		}

		if err := yaml.Unmarshal(yamlFile, config); err != nil {
			return nil, fmt.Errorf("failed to parse JWT config: %w", err)
		}
	}

	// секрет подписи поступает только из окружения
	config.Secret = os.Getenv("JWT_SECRET")

	// ВАЛИДАЦИЯ (самое важное!)
	if err := validateJWTConfig(config); err != nil {
		return nil, fmt.Errorf("invalid JWT config: %w", err)
	}
	return config, nil
}

// validateJWTConfig - строгая валидация
func validateJWTConfig(cfg *JWTConfig) error {
	// 1. Ключ не должен быть пустым
	if cfg.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	// 2. Минимальная длина ключа (рекомендация: 32+ символа)
	if len(cfg.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET too short (min 32 chars)")
	}

	// 3. Валидация времени жизни
	if cfg.TokenExp <= 0 {
		return fmt.Errorf("token_expiry must be positive")
	}

	// 4. Максимальное значение
	if cfg.TokenExp > 24*time.Hour {
		return fmt.Errorf("token_expiry too long (max 24h)")
	}

	if cfg.Issuer == "" {
		return fmt.Errorf("issuer is required")
	}

	return nil
}

// вспомогательная функция для создания структуры полезной нагрузки JWT
func NewClaims(tokenExp time.Duration, userID int64, email, phone, address, issuer string) CustomClaims {
	newClaim := CustomClaims{
		UserID:  userID,
		Email:   email,
		Phone:   phone,
		Address: address,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
			ID:        uuid.New().String(),
		},
	}
	return newClaim
}
