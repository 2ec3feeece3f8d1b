package ports

import (
	"context"

	"pronet-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindByLogin(ctx context.Context, login string) (*user.User, error)
	SignupUser(ctx context.Context, username, email, password string) (*user.User, error)
}
