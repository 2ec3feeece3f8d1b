package profile

import (
	"encoding/json"
	"time"

	"pronet-api/internal/domain/user"
)

type (
	// Profile is the one-per-user professional profile. Avatar holds the
	// asset-store name of the current avatar original; the pipeline never
	// reaps a superseded avatar implicitly.
	Profile struct {
		ID       uint64
		UserUUID user.UUID

		Name     string
		Avatar   string
		Title    string
		Location string
		Bio      string
		Skills   string

		Experience json.RawMessage
		Education  json.RawMessage
		Contact    json.RawMessage
		Social     json.RawMessage
		Activity   json.RawMessage

		CreatedAt time.Time
		UpdatedAt time.Time
	}
)
