package repo

import (
	"context"

	dom "github.com/bardleycoopster/todos/internal/domain"
)

// ListStore provides list persistence and the access relation: a list is
// reachable by its owner, or by a guest its owner shares lists with.
type ListStore interface {
	GetForUser(ctx context.Context, listID, userID int64) (dom.List, error)
	ListForUser(ctx context.Context, userID int64) ([]dom.List, error)
	Create(ctx context.Context, userID int64, name string) (dom.List, error)
	Delete(ctx context.Context, userID, listID int64) (int64, error)
	Share(ctx context.Context, ownerID, guestID int64) (bool, error)
	Unshare(ctx context.Context, ownerID, guestID int64) (int64, error)
	SharedUsers(ctx context.Context, ownerID int64) ([]dom.User, error)
}

// PGListRepo implements ListStore with Postgres.
type PGListRepo struct {
	db Querier
}

// NewPGListRepo returns a PGListRepo over db.
func NewPGListRepo(db Querier) *PGListRepo {
	return &PGListRepo{db: db}
}

const listColumns = `l.id, l.user_id, l.name, l.created_at, l.updated_at`

// GetForUser returns the list if userID is its owner or a share guest of the
// owner. pgx.ErrNoRows otherwise, so existence of other users' lists is not
// revealed.
func (r *PGListRepo) GetForUser(ctx context.Context, listID, userID int64) (dom.List, error) {
	query := `
		SELECT ` + listColumns + `, sl.guest_id IS NOT NULL AS is_shared
		FROM lists l
		LEFT JOIN shared_lists sl ON sl.owner_id = l.user_id AND sl.guest_id = $2
		WHERE l.id = $1 AND (l.user_id = $2 OR sl.guest_id = $2)
		LIMIT 1`
	var li dom.List
	err := r.db.QueryRow(ctx, query, listID, userID).Scan(
		&li.ID, &li.OwnerID, &li.Name, &li.CreatedAt, &li.UpdatedAt, &li.Shared,
	)
	return li, err
}

// ListForUser returns the user's own lists plus lists shared with them.
func (r *PGListRepo) ListForUser(ctx context.Context, userID int64) ([]dom.List, error) {
	query := `
		SELECT ` + listColumns + `, l.user_id <> $1 AS is_shared
		FROM lists l
		LEFT JOIN shared_lists sl ON sl.owner_id = l.user_id AND sl.guest_id = $1
		WHERE l.user_id = $1 OR sl.guest_id = $1
		ORDER BY l.id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lists []dom.List
	for rows.Next() {
		var li dom.List
		if err := rows.Scan(&li.ID, &li.OwnerID, &li.Name, &li.CreatedAt, &li.UpdatedAt, &li.Shared); err != nil {
			return nil, err
		}
		lists = append(lists, li)
	}
	return lists, rows.Err()
}

// Create inserts a new list owned by userID.
func (r *PGListRepo) Create(ctx context.Context, userID int64, name string) (dom.List, error) {
	query := `
		INSERT INTO lists (user_id, name)
		VALUES ($1, $2)
		RETURNING ` + listColumns
	var li dom.List
	err := r.db.QueryRow(ctx, query, userID, name).Scan(
		&li.ID, &li.OwnerID, &li.Name, &li.CreatedAt, &li.UpdatedAt,
	)
	return li, err
}

// Delete removes the list if userID owns it; returns rows deleted (0 or 1).
// Items go with it via ON DELETE CASCADE.
func (r *PGListRepo) Delete(ctx context.Context, userID, listID int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM lists WHERE user_id = $1 AND id = $2`, userID, listID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Share grants guestID access to every list ownerID owns. Returns false when
// the pair already exists.
func (r *PGListRepo) Share(ctx context.Context, ownerID, guestID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO shared_lists (owner_id, guest_id)
		VALUES ($1, $2)
		ON CONFLICT (owner_id, guest_id) DO NOTHING`,
		ownerID, guestID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Unshare revokes guestID's access; returns rows deleted (0 or 1).
func (r *PGListRepo) Unshare(ctx context.Context, ownerID, guestID int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM shared_lists WHERE owner_id = $1 AND guest_id = $2`, ownerID, guestID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// SharedUsers returns every user ownerID currently shares lists with.
func (r *PGListRepo) SharedUsers(ctx context.Context, ownerID int64) ([]dom.User, error) {
	query := `
		SELECT u.id, u.username, u.email, u.password_hash, u.created_at
		FROM shared_lists sl
		INNER JOIN users u ON u.id = sl.guest_id
		WHERE sl.owner_id = $1
		ORDER BY u.id`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []dom.User
	for rows.Next() {
		var u dom.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
