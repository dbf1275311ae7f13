// описание моделей запросов и ответов сервера клиники
package dto

import (
	"time"
	"vet_service/internal/domain"
)

// структура запроса для логина пользователя.
// Пароль здесь валидатором не проверяется: его отсутствие должно давать 422
// уже ПОСЛЕ проверки существования пользователя (404), как в исходном потоке.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// структура запроса для регистрации пользователя.
// Отсутствие пароля обрабатывается в хэндлере после проверки на дубликат (409 раньше 422).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// структура ответа при успешной регистрации или логине:
// наружу уходит только безопасное подмножество полей пользователя
type AuthResponse struct {
	Message string               `json:"message"`
	Data    *domain.TokenPayload `json:"data"`
}

// структура ответа для проверки сессии
type CheckResponse struct {
	Message  string      `json:"message"`
	Success  bool        `json:"success"`
	UserData interface{} `json:"userData"`
}

// общий ответ-сообщение (логаут и ошибки)
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// структура запроса на создание записи о приёме
type CreateConsultationRequest struct {
	ConsultationTypeID int64      `json:"id_tipoconsulta"`
	AnimalTypeID       int64      `json:"id_tipoanimal"`
	Date               *time.Time `json:"fecha"`
}

// структура запроса на мягкое удаление записи о приёме.
// UserID и DischargedAt учитываются только для администраторов.
type DeleteConsultationRequest struct {
	ConsultationID int64      `json:"id_consulta"`
	UserID         int64      `json:"id_usuario"`
	DischargedAt   *time.Time `json:"fecha_salida"`
}

// структура ответа со списком или созданной записью
type DataResponse struct {
	Message string      `json:"message"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}
