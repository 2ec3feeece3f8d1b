package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pronet-api/internal/domain/profile"
	"pronet-api/internal/domain/user"
	"pronet-api/internal/infrastructure/db/postgres"
)

var ErrProfileNotFound = errors.New("profile row does not exist")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) profile.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetOrCreate(ctx context.Context, userID user.ID, defaultName string) (*profile.Profile, error) {
	p := new(Profile)

	err := r.db.QueryRow(ctx, UpsertProfile, userID, defaultName).Scan(
		&p.ID,

		&p.Name,
		&p.Avatar,
		&p.Title,
		&p.Location,
		&p.Bio,
		&p.Skills,

		&p.Experience,
		&p.Education,
		&p.Contact,
		&p.Social,
		&p.Activity,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) UpdateProfile(ctx context.Context, userID user.ID, req profile.Profile) (*profile.Profile, error) {
	p := new(Profile)

	err := r.db.QueryRow(ctx, UpdateProfileByUserID,
		userID, req.Name, req.Title, req.Location, req.Bio, req.Skills,
		req.Experience, req.Education, req.Contact, req.Social, req.Activity,
	).Scan(
		&p.ID,

		&p.Name,
		&p.Avatar,
		&p.Title,
		&p.Location,
		&p.Bio,
		&p.Skills,

		&p.Experience,
		&p.Education,
		&p.Contact,
		&p.Social,
		&p.Activity,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) SetAvatar(ctx context.Context, userID user.ID, assetName string) error {
	tag, err := r.db.Exec(ctx, UpdateAvatarByUserID, userID, assetName)
	if err != nil {
		return err
	}
	// a 0-row UPDATE is not an Exec error; surface it so the write can
	// never be silently dropped
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
