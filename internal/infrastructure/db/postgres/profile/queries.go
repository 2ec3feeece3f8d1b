package profile

const (
	// Idempotent get-or-create: the no-op DO UPDATE makes RETURNING
	// yield the row whether it was just inserted or already there.
	UpsertProfile = `
		INSERT INTO profiles (user_id, name)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING
		  id, name, avatar, title, location, bio, skills, experience, education, contact, social, activity, created_at, updated_at
	`
	UpdateProfileByUserID = `
		UPDATE profiles
		SET name = $2,
		    title = $3,
		    location = $4,
		    bio = $5,
		    skills = $6,
		    experience = $7,
		    education = $8,
		    contact = $9,
		    social = $10,
		    activity = $11,
		    updated_at = now()
		WHERE user_id = $1
		RETURNING
		  id, name, avatar, title, location, bio, skills, experience, education, contact, social, activity, created_at, updated_at
	`
	UpdateAvatarByUserID = `
		UPDATE profiles
		SET avatar = $2,
		    updated_at = now()
		WHERE user_id = $1
	`
)
