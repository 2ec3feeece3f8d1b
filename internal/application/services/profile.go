package services

import (
	"context"
	"errors"

	"pronet-api/internal/application/ports"
	domain "pronet-api/internal/domain/profile"
	"pronet-api/internal/domain/user"
)

// ErrUserNotFound means the token subject has no live user row, e.g.
// the account was soft-deleted after the token was issued.
var ErrUserNotFound = errors.New("user not found")

type ProfileService struct {
	profileRepository domain.Repository
	userRepository    user.Repository
}

func NewProfileService(
	profileRepository domain.Repository,
	userRepository user.Repository,
) ports.ProfileService {
	return &ProfileService{
		profileRepository: profileRepository,
		userRepository:    userRepository,
	}
}

func (ps *ProfileService) GetOrCreate(ctx context.Context, owner user.UUID) (*domain.Profile, error) {
	u, err := ps.userRepository.FetchUserByID(ctx, owner)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	id, err := ps.userRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return nil, err
	}

	p, err := ps.profileRepository.GetOrCreate(ctx, id, u.Username)
	if err != nil {
		return nil, err
	}
	p.UserUUID = owner

	return p, nil
}

func (ps *ProfileService) UpdateProfile(ctx context.Context, owner user.UUID, req domain.Profile) (*domain.Profile, error) {
	id, err := ps.userRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return nil, err
	}

	p, err := ps.profileRepository.UpdateProfile(ctx, id, req)
	if err != nil || p == nil {
		return nil, err
	}
	p.UserUUID = owner

	return p, nil
}

func (ps *ProfileService) SetAvatar(ctx context.Context, owner user.UUID, assetName string) error {
	u, err := ps.userRepository.FetchUserByID(ctx, owner)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	id, err := ps.userRepository.FetchInternalID(ctx, owner)
	if err != nil {
		return err
	}

	// the profile row may not exist yet; provisioning it first keeps
	// the avatar update from matching zero rows
	if _, err = ps.profileRepository.GetOrCreate(ctx, id, u.Username); err != nil {
		return err
	}

	return ps.profileRepository.SetAvatar(ctx, id, assetName)
}
