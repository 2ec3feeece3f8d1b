package post

import (
	"time"

	"github.com/google/uuid"
)

type (
	Post struct {
		ID       uint64
		UserUUID uuid.UUID

		Content       string
		MediaURL      *string
		IsPublic      bool
		AllowComments bool

		CreatedAt time.Time
	}
	Posts []*Post
)
