package post

const (
	InsertPost = `
		INSERT INTO posts (user_id, content, media_url, is_public, allow_comments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, content, media_url, is_public, allow_comments, created_at
	`
	SelectFeed = `
		SELECT p.id, u.uuid, p.content, p.media_url, p.is_public, p.allow_comments, p.created_at
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.is_public
		ORDER BY p.created_at DESC
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
)
