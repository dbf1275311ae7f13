package jwt_service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService - рабочий сервис с методами
type JWTService struct {
	config *JWTConfig // Конфиг внутри сервиса
}

// Конфигурация JWTConfig
type JWTConfig struct {
	Secret   string        `yaml:"-"`            // секретный ключ для подписи (только из окружения, никогда из файла)
	TokenExp time.Duration `yaml:"token_expiry"` // время жизни токена сессии (12 часов)
	Issuer   string        `yaml:"issuer"`       // издатель токена
}

// CustomClaims для JWT: полезная нагрузка токена сессии.
// Сюда НИКОГДА не попадают хэш пароля и флаг администратора.
type CustomClaims struct {
	UserID  int64  `json:"id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	jwt.RegisteredClaims
}
