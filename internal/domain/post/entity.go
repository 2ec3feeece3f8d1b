package post

import (
	"time"

	"pronet-api/internal/domain/user"
)

type (
	Post struct {
		ID       uint64
		UserUUID user.UUID

		Content       string
		MediaURL      *string
		IsPublic      bool
		AllowComments bool

		CreatedAt time.Time
	}
	Posts []*Post
)
