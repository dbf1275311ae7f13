// описание общих структур для всего vet_service
package domain

import (
	"errors"
	"time"
)

var (
	ErrUserAlreadyExists    = errors.New("user already exists in base")
	ErrUserNotFound         = errors.New("user not found in base")
	ErrInvalidPassword      = errors.New("password does not match")
	ErrPasswordRequired     = errors.New("password is required")
	ErrConsultationNotFound = errors.New("consultation not found")
)

// структура пользователя клиники (таблица usuarios).
// PasswordHash и IsAdmin никогда не покидают сервер.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	IsAdmin      bool   `json:"-"`
}

// TokenPayload - безопасное подмножество данных пользователя,
// которое попадает в токен сессии и в тела ответов
type TokenPayload struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// NewTokenPayload строит полезную нагрузку из записи пользователя
func NewTokenPayload(u *User) *TokenPayload {
	return &TokenPayload{
		ID:      u.ID,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
	}
}

// структура записи о приёме (таблица consultas).
// Estado=false означает мягкое удаление, строки из базы не уходят.
type Consultation struct {
	ID                 int64      `json:"id_consulta"`
	ConsultationTypeID int64      `json:"id_tipoconsulta"`
	AnimalTypeID       int64      `json:"tipo_animal"`
	UserID             int64      `json:"id_usuario"`
	Active             bool       `json:"estado"`
	AdmittedAt         time.Time  `json:"fecha_entrada"`
	DischargedAt       *time.Time `json:"fecha_salida,omitempty"`

	// имена из связанных справочников (заполняются при выборке с join)
	AnimalName           string `json:"animal_nombre,omitempty"`
	ConsultationTypeName string `json:"tipo_consulta_nombre,omitempty"`
}

// тип животного (таблица animales)
type Animal struct {
	ID   int64  `json:"animal_id"`
	Name string `json:"nombre"`
}

// тип приёма с ценой (таблица tipo_consultas)
type ConsultationType struct {
	ID    int64   `json:"id_tipo"`
	Name  string  `json:"nombre"`
	Price float64 `json:"precio"`
}
