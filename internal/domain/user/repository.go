package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, uuid UUID) (*User, error)
	// FetchUserByLogin resolves a user by username or email, whichever matches.
	FetchUserByLogin(ctx context.Context, login string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)
}
