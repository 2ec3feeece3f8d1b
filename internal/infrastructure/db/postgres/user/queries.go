package user

const (
	SelectUserByID = `
		SELECT id, uuid, username, email, password_hash, role, created_at, updated_at, deleted_at
		FROM users
		WHERE uuid = $1 AND deleted_at IS NULL
	`
	SelectUserByLogin = `
		SELECT id, uuid, username, email, password_hash, role, created_at, updated_at, deleted_at
		FROM users
		WHERE (username = $1 OR email = $1) AND deleted_at IS NULL
	`
	InsertUser = `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, uuid, username, email, password_hash, role, created_at, updated_at, deleted_at
	`
	SelectIdByUUID = `SELECT id FROM users WHERE uuid = $1::uuid`
)
