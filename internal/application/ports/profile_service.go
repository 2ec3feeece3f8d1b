package ports

import (
	"context"

	"pronet-api/internal/domain/profile"
	"pronet-api/internal/domain/user"
)

type ProfileService interface {
	// GetOrCreate is the explicit idempotent profile lookup used at the
	// orchestration boundary; a missing row is created with defaults.
	GetOrCreate(ctx context.Context, owner user.UUID) (*profile.Profile, error)
	// UpdateProfile replaces the full profile representation with req;
	// fields absent from the request body are written back empty. PUT
	// semantics, not a merge.
	UpdateProfile(ctx context.Context, owner user.UUID, req profile.Profile) (*profile.Profile, error)
	SetAvatar(ctx context.Context, owner user.UUID, assetName string) error
}
