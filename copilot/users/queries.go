package users

const (
	queryFindByUsername = `
		SELECT id, username, created_at
		FROM users
		WHERE username = $1
	`

	queryCreate = `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING id, username, created_at
	`
)
