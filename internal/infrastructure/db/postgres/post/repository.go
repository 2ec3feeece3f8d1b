package post

import (
	"context"

	"pronet-api/internal/domain/post"
	"pronet-api/internal/domain/user"
	"pronet-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) post.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreatePost(ctx context.Context, userID user.ID, req *post.Post) (*post.Post, error) {
	p := new(Post)

	err := r.db.QueryRow(
		ctx,
		InsertPost,
		userID, req.Content, req.MediaURL, req.IsPublic, req.AllowComments,
	).Scan(
		&p.ID,
		&p.Content,
		&p.MediaURL,
		&p.IsPublic,
		&p.AllowComments,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.UserUUID = req.UserUUID

	return fromDBModel(p), nil
}

func (r *Repository) FetchFeed(ctx context.Context, page int) (post.Posts, error) {
	rows, err := r.db.Query(ctx, SelectFeed, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps Posts
	for rows.Next() {
		p := new(Post)

		if err = rows.Scan(
			&p.ID,
			&p.UserUUID,

			&p.Content,
			&p.MediaURL,
			&p.IsPublic,
			&p.AllowComments,

			&p.CreatedAt,
		); err != nil {
			return nil, err
		}

		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ps), nil
}
