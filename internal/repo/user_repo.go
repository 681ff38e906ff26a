package repo

import (
	"context"

	dom "github.com/bardleycoopster/todos/internal/domain"
)

// UserStore provides user persistence.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (dom.User, error)
	Create(ctx context.Context, username, email, passwordHash string) (dom.User, error)
}

// PGUserRepo implements UserStore with Postgres.
type PGUserRepo struct {
	db Querier
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db Querier) *PGUserRepo {
	return &PGUserRepo{db: db}
}

const userColumns = `id, username, email, password_hash, created_at`

// GetByUsername returns the user by username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// GetByUsernameOrEmail looks a user up by either handle, for the share flow.
func (r *PGUserRepo) GetByUsernameOrEmail(ctx context.Context, username, email string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $2 LIMIT 1`,
		username, email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, username, email, passwordHash string) (dom.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns
	var u dom.User
	err := r.db.QueryRow(ctx, query, username, email, passwordHash).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	return u, err
}
