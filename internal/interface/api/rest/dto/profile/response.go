package profile

import (
	"encoding/json"

	"github.com/google/uuid"
)

type (
	Profile struct {
		UserUUID uuid.UUID `json:"user_uuid"`

		Name     string `json:"name"`
		Avatar   string `json:"avatar"`
		Title    string `json:"title"`
		Location string `json:"location"`
		Bio      string `json:"bio"`
		Skills   string `json:"skills"`

		Experience json.RawMessage `json:"experience,omitempty"`
		Education  json.RawMessage `json:"education,omitempty"`
		Contact    json.RawMessage `json:"contact,omitempty"`
		Social     json.RawMessage `json:"social,omitempty"`
		Activity   json.RawMessage `json:"activity,omitempty"`
	}

	Request struct {
		Name     string `json:"name"`
		Title    string `json:"title"`
		Location string `json:"location"`
		Bio      string `json:"bio"`
		Skills   string `json:"skills"`

		Experience json.RawMessage `json:"experience"`
		Education  json.RawMessage `json:"education"`
		Contact    json.RawMessage `json:"contact"`
		Social     json.RawMessage `json:"social"`
		Activity   json.RawMessage `json:"activity"`
	}
)
