package post

import (
	"context"

	"pronet-api/internal/domain/user"
)

type Repository interface {
	CreatePost(ctx context.Context, userID user.ID, req *Post) (*Post, error)
	// FetchFeed lists public posts, newest first.
	FetchFeed(ctx context.Context, page int) (Posts, error)
}
