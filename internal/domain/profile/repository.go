package profile

import (
	"context"

	"pronet-api/internal/domain/user"
)

type Repository interface {
	// GetOrCreate returns the user's profile, inserting a default row on
	// first access. Idempotent; concurrent callers get the same row.
	GetOrCreate(ctx context.Context, userID user.ID, defaultName string) (*Profile, error)
	// UpdateProfile overwrites every mutable column except avatar with
	// the values in req and returns the stored row; nil without error
	// when no row matches.
	UpdateProfile(ctx context.Context, userID user.ID, req Profile) (*Profile, error)
	// SetAvatar records the asset-store name of the current avatar; it
	// errors rather than succeed against a missing row.
	SetAvatar(ctx context.Context, userID user.ID, assetName string) error
}
