package repository

import (
	"context"
	"fmt"
	"time"
	authinterfaces "vet_service/internal/auth_interfaces"
	"vet_service/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// репозиторий записей о приёмах и справочников клиники
type ClinicDBRepository struct {
	pool *pgxpool.Pool
}

// конструктор для слоя базы данных клиники
func NewClinicRepository(pool *pgxpool.Pool) authinterfaces.ClinicRepoInterface {
	return &ClinicDBRepository{pool: pool}
}

// добавление новой записи о приёме (estado=true)
func (r *ClinicDBRepository) AddConsultation(ctx context.Context, consultation *domain.Consultation) (*domain.Consultation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        INSERT INTO consultas (id_tipoconsulta, tipo_animal, id_usuario, estado, fecha_entrada)
        VALUES ($1, $2, $3, TRUE, $4)
        RETURNING id_consulta, fecha_entrada
    `

	created := *consultation
	created.Active = true
	err := r.pool.QueryRow(ctx, query,
		consultation.ConsultationTypeID,
		consultation.AnimalTypeID,
		consultation.UserID,
		consultation.AdmittedAt,
	).Scan(&created.ID, &created.AdmittedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert consultation: %w", err)
	}

	return &created, nil
}

// мягкое удаление: запись не удаляется, estado переводится в false.
// Возвращает количество затронутых строк (0 = нечего удалять).
func (r *ClinicDBRepository) SoftDeleteConsultation(ctx context.Context, consultationID, userID int64, dischargedAt *time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	const query = `
        UPDATE consultas
        SET estado = FALSE,
            fecha_salida = COALESCE($3, fecha_salida)
        WHERE id_consulta = $1 AND id_usuario = $2 AND estado = TRUE
    `

	tag, err := r.pool.Exec(ctx, query, consultationID, userID, dischargedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to soft-delete consultation: %w", err)
	}

	return tag.RowsAffected(), nil
}

// выборка активных приёмов пользователя вместе с именами из справочников
func (r *ClinicDBRepository) ListConsultationsByUser(ctx context.Context, userID int64) ([]domain.Consultation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        SELECT c.id_consulta, c.id_tipoconsulta, c.tipo_animal, c.id_usuario,
               c.estado, c.fecha_entrada, c.fecha_salida,
               a.nombre, t.nombre
        FROM consultas c
        JOIN animales a ON a.animal_id = c.tipo_animal
        JOIN tipo_consultas t ON t.id_tipo = c.id_tipoconsulta
        WHERE c.id_usuario = $1 AND c.estado = TRUE
        ORDER BY c.fecha_entrada DESC
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query consultations: %w", err)
	}
	defer rows.Close()

	var consultations []domain.Consultation
	for rows.Next() {
		var c domain.Consultation
		err := rows.Scan(
			&c.ID,
			&c.ConsultationTypeID,
			&c.AnimalTypeID,
			&c.UserID,
			&c.Active,
			&c.AdmittedAt,
			&c.DischargedAt,
			&c.AnimalName,
			&c.ConsultationTypeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan consultation: %w", err)
		}
		consultations = append(consultations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read consultations: %w", err)
	}

	return consultations, nil
}

// полный справочник типов животных
func (r *ClinicDBRepository) ListAnimals(ctx context.Context) ([]domain.Animal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `SELECT animal_id, nombre FROM animales ORDER BY animal_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query animals: %w", err)
	}
	defer rows.Close()

	var animals []domain.Animal
	for rows.Next() {
		var a domain.Animal
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan animal: %w", err)
		}
		animals = append(animals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read animals: %w", err)
	}

	return animals, nil
}

// полный справочник типов приёмов с ценами
func (r *ClinicDBRepository) ListConsultationTypes(ctx context.Context) ([]domain.ConsultationType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `SELECT id_tipo, nombre, precio FROM tipo_consultas ORDER BY id_tipo`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query consultation types: %w", err)
	}
	defer rows.Close()

	var types []domain.ConsultationType
	for rows.Next() {
		var t domain.ConsultationType
		if err := rows.Scan(&t.ID, &t.Name, &t.Price); err != nil {
			return nil, fmt.Errorf("failed to scan consultation type: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read consultation types: %w", err)
	}

	return types, nil
}
