package user

const (
	SelectUserByID = `
		SELECT id, name, birthdate, status
		FROM users
		WHERE id = $1
	`
	InsertUser = `
		INSERT INTO users (name, birthdate, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	DeactivateUserByID = `
		UPDATE users
		SET status = 'inactive'
		WHERE id = $1
	`
	ExistsActiveUser = `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE id = $1 AND status = 'active'
		)
	`
)
