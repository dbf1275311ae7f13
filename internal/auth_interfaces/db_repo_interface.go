package authinterfaces

import (
	"context"
	"time"
	"vet_service/internal/domain"
)

// интерфейс слоя базы данных для пользователей клиники
type UserRepoInterface interface {
	CheckIfInBaseByEmail(ctx context.Context, email string) (int64, bool, error)
	AddUser(ctx context.Context, user *domain.User) (int64, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
}

// интерфейс слоя базы данных для записей о приёмах и справочников
type ClinicRepoInterface interface {
	AddConsultation(ctx context.Context, consultation *domain.Consultation) (*domain.Consultation, error)
	SoftDeleteConsultation(ctx context.Context, consultationID, userID int64, dischargedAt *time.Time) (int64, error)
	ListConsultationsByUser(ctx context.Context, userID int64) ([]domain.Consultation, error)
	ListAnimals(ctx context.Context) ([]domain.Animal, error)
	ListConsultationTypes(ctx context.Context) ([]domain.ConsultationType, error)
}

// интерфейс для черного списка отозванных токенов
type BlackListRepository interface {
	AddToBlacklist(ctx context.Context, tokenJTI string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, tokenJTI string) (bool, error)
}
