package generations

const (
	queryCreate = `
		INSERT INTO generations (prompt, language, code, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, prompt, language, code, created_at, user_id
	`

	queryCount = `
		SELECT COUNT(*)
		FROM generations
	`

	queryListPage = `
		SELECT g.id, g.prompt, g.language, g.code, g.created_at, g.user_id, u.username, u.created_at
		FROM generations g
		INNER JOIN users u ON u.id = g.user_id
		ORDER BY g.created_at DESC, g.seq DESC
		LIMIT $1 OFFSET $2
	`
)
