package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pronet-api/internal/domain/user"
	"pronet-api/internal/infrastructure/db/postgres"
)

var ErrUserAlreadyExists = errors.New("username or email already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, uuid.String()).Scan(
		&u.ID,
		&u.UUID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByLogin(ctx context.Context, login string) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByLogin, login).Scan(
		&u.ID,
		&u.UUID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Username, req.Email, req.PasswordHash, req.Role,
	).Scan(
		&u.ID,
		&u.UUID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchInternalID(ctx context.Context, uuid user.UUID) (user.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, SelectIdByUUID, uuid.String()).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user not found by uuid %s: %w", uuid.String(), err)
		}
		return 0, err
	}

	return user.ID(id), nil
}
