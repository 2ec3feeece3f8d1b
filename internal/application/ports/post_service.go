package ports

import (
	"context"
	"mime/multipart"

	"pronet-api/internal/domain/post"
	"pronet-api/internal/domain/user"
)

type (
	CreatePostInput struct {
		Content       string
		IsPublic      bool
		AllowComments bool
		// Media, when present, runs through the post-media pipeline
		// before the post row is written.
		Media *multipart.FileHeader
	}

	PostService interface {
		CreatePost(ctx context.Context, owner user.UUID, in CreatePostInput) (*post.Post, error)
		FetchFeed(ctx context.Context, page int) (post.Posts, error)
	}
)
