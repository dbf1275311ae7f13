// описание сервисного слоя для записей о приёмах
package service

import (
	"context"
	"fmt"
	"time"
	authinterfaces "vet_service/internal/auth_interfaces"
	"vet_service/internal/domain"
	"vet_service/internal/vet_server/dto"
)

// описание интерфейса сервисного слоя клиники
type ClinicServiceInterface interface {
	CreateConsultation(ctx context.Context, userID int64, req *dto.CreateConsultationRequest) (*domain.Consultation, error)
	DeleteConsultation(ctx context.Context, requesterID int64, req *dto.DeleteConsultationRequest) error
	ListConsultations(ctx context.Context, userID int64) ([]domain.Consultation, error)
	ListAnimals(ctx context.Context) ([]domain.Animal, error)
	ListConsultationTypes(ctx context.Context) ([]domain.ConsultationType, error)
}

// описание структуры сервисного слоя клиники
type ClinicService struct {
	clinic authinterfaces.ClinicRepoInterface
	users  authinterfaces.UserRepoInterface
}

// Конструктор сервисного слоя клиники
func NewClinicService(clinic authinterfaces.ClinicRepoInterface, users authinterfaces.UserRepoInterface) *ClinicService {
	return &ClinicService{
		clinic: clinic,
		users:  users,
	}
}

// создание новой записи о приёме от имени владельца сессии
func (s *ClinicService) CreateConsultation(ctx context.Context, userID int64, req *dto.CreateConsultationRequest) (*domain.Consultation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// дата приёма по умолчанию - сейчас
	admittedAt := time.Now()
	if req.Date != nil {
		admittedAt = *req.Date
	}

	consultation := &domain.Consultation{
		ConsultationTypeID: req.ConsultationTypeID,
		AnimalTypeID:       req.AnimalTypeID,
		UserID:             userID,
		AdmittedAt:         admittedAt,
	}

	return s.clinic.AddConsultation(ctx, consultation)
}

// мягкое удаление записи о приёме. Владелец удаляет только своё; администратор
// может указать чужой id_usuario и дату выписки. Флаг администратора читается
// из базы, а не из токена: в полезной нагрузке токена его намеренно нет.
func (s *ClinicService) DeleteConsultation(ctx context.Context, requesterID int64, req *dto.DeleteConsultationRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	targetUserID := requesterID
	var dischargedAt *time.Time

	// чужая запись или дата выписки требуют прав администратора
	if (req.UserID != 0 && req.UserID != requesterID) || req.DischargedAt != nil {
		requester, err := s.users.FindUserByID(ctx, requesterID)
		if err != nil {
			return fmt.Errorf("failed to check requester: %w", err)
		}

		if requester != nil && requester.IsAdmin {
			if req.UserID != 0 {
				targetUserID = req.UserID
			}
			dischargedAt = req.DischargedAt
		}
		// не администратору молча оставляем его собственную область видимости
	}

	affected, err := s.clinic.SoftDeleteConsultation(ctx, req.ConsultationID, targetUserID, dischargedAt)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrConsultationNotFound
	}

	return nil
}

// список активных приёмов пользователя
func (s *ClinicService) ListConsultations(ctx context.Context, userID int64) ([]domain.Consultation, error) {
	return s.clinic.ListConsultationsByUser(ctx, userID)
}

// справочник типов животных
func (s *ClinicService) ListAnimals(ctx context.Context) ([]domain.Animal, error) {
	return s.clinic.ListAnimals(ctx)
}

// справочник типов приёмов
func (s *ClinicService) ListConsultationTypes(ctx context.Context) ([]domain.ConsultationType, error) {
	return s.clinic.ListConsultationTypes(ctx)
}
