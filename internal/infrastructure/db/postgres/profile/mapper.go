package profile

import (
	domain "pronet-api/internal/domain/profile"
)

func fromDBModel(model *Profile) *domain.Profile {
	var p = &domain.Profile{
		ID: model.ID,

		Name:     model.Name,
		Avatar:   model.Avatar,
		Title:    model.Title,
		Location: model.Location,
		Bio:      model.Bio,
		Skills:   model.Skills,

		Experience: model.Experience,
		Education:  model.Education,
		Contact:    model.Contact,
		Social:     model.Social,
		Activity:   model.Activity,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return p
}
