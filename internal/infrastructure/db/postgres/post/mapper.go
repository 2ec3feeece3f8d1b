package post

import (
	domain "pronet-api/internal/domain/post"
)

func fromDBModel(model *Post) *domain.Post {
	var p = &domain.Post{
		ID:       model.ID,
		UserUUID: model.UserUUID,

		Content:       model.Content,
		MediaURL:      model.MediaURL,
		IsPublic:      model.IsPublic,
		AllowComments: model.AllowComments,

		CreatedAt: model.CreatedAt,
	}

	return p
}

func fromDBModels(models *Posts) domain.Posts {
	ps := make(domain.Posts, len(*models))
	for idx, p := range *models {
		ps[idx] = fromDBModel(p)
	}

	return ps
}
