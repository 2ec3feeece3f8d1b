package profile

import (
	"encoding/json"
	"time"
)

type (
	Profile struct {
		ID uint64

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
