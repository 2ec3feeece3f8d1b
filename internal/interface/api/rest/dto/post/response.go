package post

import (
	"time"

	"github.com/google/uuid"
)

type (
	Post struct {
		ID            uint64    `json:"id"`
		UserUUID      uuid.UUID `json:"user_uuid"`
		Content       string    `json:"content"`
		MediaURL      *string   `json:"media_url,omitempty"`
		IsPublic      bool      `json:"is_public"`
		AllowComments bool      `json:"allow_comments"`
		CreatedAt     time.Time `json:"created_at"`
	}
	Posts        []Post
	ResponseData struct {
		Data Posts `json:"data"`
	}
)
