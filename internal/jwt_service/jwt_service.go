package jwt_service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ошибки верификации токена: три различимых исхода для слоя выше.
// Наружу (клиенту) все три всегда схлопываются в один общий 401.
var (
	ErrMalformedToken = errors.New("token is malformed")
	ErrBadSignature   = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token is expired")
)

// интерфейс менеджера токенов для использования во внешних модулях
type JWTManager interface {
	GenerateToken(claims CustomClaims) (string, error)
	VerifyToken(tokenString string) (*CustomClaims, error)
	TokenTTL() int
}

// NewJWTService создаёт рабочий сервис с конфигом
func NewJWTService(config *JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// метод структуры JWT для генерации токена сессии
func (j *JWTService) GenerateToken(claims CustomClaims) (string, error) {
	if j.config.Secret == "" {
		return "", errors.New("signing secret is not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.config.Secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// метод для верификации токена сессии: возвращает полезную нагрузку
// либо одну из трех ошибок верификации
func (j *JWTService) VerifyToken(tokenString string) (*CustomClaims, error) {
	if j.config.Secret == "" {
		return nil, errors.New("signing secret is not configured")
	}

	// пытаемся получить токен
	token, err := parser.ParseWithClaims(
		tokenString,
		&CustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrBadSignature
			}
			return []byte(j.config.Secret), nil
		})

	if err != nil {
		return nil, mapVerificationError(err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrMalformedToken
	}

	return claims, nil
}

// TokenTTL возвращает время жизни токена в секундах (для max-age куки)
func (j *JWTService) TokenTTL() int {
	return int(j.config.TokenExp.Seconds())
}

// маппер ошибок библиотеки в наши три исхода верификации
func mapVerificationError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformedToken
	default:
		// всё прочее (нет exp, неизвестный метод подписи и т.д.) считаем порчей токена
		return ErrMalformedToken
	}
}
