package repository

import (
	"context"
	"errors"
	"fmt"
	authinterfaces "vet_service/internal/auth_interfaces"
	"vet_service/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// создаём репозиторий базы данных для пользователей клиники на базе pgxpool

// Реализуем ТОЛЬКО то, что нужно vet_service
type UserDBRepository struct {
	pool *pgxpool.Pool
}

// создаём конструктор для слоя базы данных
func NewUserRepository(pool *pgxpool.Pool) authinterfaces.UserRepoInterface {
	return &UserDBRepository{pool: pool}
}

func (a *UserDBRepository) CheckIfInBaseByEmail(ctx context.Context, email string) (int64, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	const query = `SELECT id FROM usuarios WHERE correo = $1 LIMIT 1`

	var id int64
	err := a.pool.QueryRow(ctx, query, email).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to query user by email: %w", err)
	}

	return id, true, nil
}

func (a *UserDBRepository) AddUser(ctx context.Context, user *domain.User) (int64, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	const query = `
        INSERT INTO usuarios (correo, contrasena, telefono, direccion, is_admin)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (correo) DO NOTHING
        RETURNING id
    `

	var userID int64
	err := a.pool.QueryRow(ctx, query, user.Email, user.PasswordHash, user.Phone, user.Address, user.IsAdmin).Scan(&userID)

	if errors.Is(err, pgx.ErrNoRows) {
		return -1, domain.ErrUserAlreadyExists
	}
	if err != nil {
		return -1, fmt.Errorf("failed to insert user: %w", err)
	}

	return userID, nil
}

func (a *UserDBRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        SELECT id, correo, contrasena, telefono, direccion, is_admin
        FROM usuarios
        WHERE correo = $1
        LIMIT 1
    `

	var user domain.User
	err := a.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Address,
		&user.IsAdmin,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // пользователь не найден - не ошибка
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return &user, nil
}

func (a *UserDBRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        SELECT id, correo, contrasena, telefono, direccion, is_admin
        FROM usuarios
        WHERE id = $1
        LIMIT 1
    `

	var user domain.User
	err := a.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Address,
		&user.IsAdmin,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return &user, nil
}
