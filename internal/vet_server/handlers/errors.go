package handlers

import (
	"errors"
	"net/http"
	"vet_service/internal/domain"
)

type APIError struct {
	Code    string `json:"code"`    // для фронтенда: "USER_EXISTS"
	Message string `json:"message"` // для пользователя
	Field   string `json:"field,omitempty"`
}

// функция - маппер для формирования нужного статуса и тела в зависимости от типа
// кастомной ошибки. Ошибки хранилища и хэширования наружу не детализируются.
func ToAPIError(err error) (int, APIError) {
	switch {
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return http.StatusConflict, APIError{
			Code:    "USER_EXISTS",
			Message: "This email is already registered, log in or use another email",
		}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, APIError{
			Code:    "USER_NOT_FOUND",
			Message: "That user is not in the database",
			Field:   "email",
		}
	case errors.Is(err, domain.ErrPasswordRequired):
		return http.StatusUnprocessableEntity, APIError{
			Code:    "PASSWORD_REQUIRED",
			Message: "A password is required to continue",
			Field:   "password",
		}
	case errors.Is(err, domain.ErrInvalidPassword):
		return http.StatusUnauthorized, APIError{
			Code:    "BAD_CREDENTIALS",
			Message: "The given password is not correct",
		}
	case errors.Is(err, domain.ErrConsultationNotFound):
		return http.StatusNotFound, APIError{
			Code:    "CONSULTATION_NOT_FOUND",
			Message: "The consultation was not found or was already deleted",
		}
	default:
		return http.StatusInternalServerError, APIError{
			Code:    "INTERNAL_ERROR",
			Message: "Something went wrong",
		}
	}
}
