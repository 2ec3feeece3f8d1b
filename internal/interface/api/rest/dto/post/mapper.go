package post

import (
	"pronet-api/internal/domain/post"
)

func ToResponsePost(pDomain post.Post) Post {
	var p = Post{
		ID:            pDomain.ID,
		UserUUID:      pDomain.UserUUID,
		Content:       pDomain.Content,
		MediaURL:      pDomain.MediaURL,
		IsPublic:      pDomain.IsPublic,
		AllowComments: pDomain.AllowComments,
		CreatedAt:     pDomain.CreatedAt,
	}

	return p
}

func ToResponsePosts(psDomain post.Posts) Posts {
	ps := make(Posts, len(psDomain))
	for idx, p := range psDomain {
		ps[idx] = ToResponsePost(*p)
	}

	return ps
}
