package repo

import (
	"context"

	dom "github.com/bardleycoopster/todos/internal/domain"
)

// ItemStore provides persistence for list items. Positions are plain
// integers, unique per list; only the service layer decides what they are,
// the store just executes the primitives.
type ItemStore interface {
	ItemsOrdered(ctx context.Context, listID int64) ([]dom.ListItem, error)
	MaxPosition(ctx context.Context, listID int64) (int, bool, error)
	Insert(ctx context.Context, listID int64, description string, position int, userID int64) (dom.ListItem, error)
	ShiftPositionsFrom(ctx context.Context, listID int64, from, delta int) error
	SetComplete(ctx context.Context, userID, itemID int64, complete bool) (dom.ListItem, error)
	DeleteCompleted(ctx context.Context, listID int64) (int64, error)
}

// PGItemRepo implements ItemStore with Postgres. Bind it to a pool for
// standalone statements or to a transaction via TxScope.
type PGItemRepo struct {
	db Querier
}

// NewPGItemRepo returns a PGItemRepo over db.
func NewPGItemRepo(db Querier) *PGItemRepo {
	return &PGItemRepo{db: db}
}

const itemColumns = `id, list_id, description, complete, position, created_at, updated_at, last_user_id`

// scanItem maps one list_items row onto the domain entity. Every persisted
// column is read here and nowhere else.
func scanItem(row interface{ Scan(dest ...any) error }) (dom.ListItem, error) {
	var it dom.ListItem
	err := row.Scan(
		&it.ID, &it.ListID, &it.Description, &it.Complete, &it.Position,
		&it.CreatedAt, &it.UpdatedAt, &it.LastUserID,
	)
	return it, err
}

// ItemsOrdered returns every item of the list sorted by position ascending,
// ties broken by id so the order is deterministic.
func (r *PGItemRepo) ItemsOrdered(ctx context.Context, listID int64) ([]dom.ListItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM list_items WHERE list_id = $1 ORDER BY position, id`
	rows, err := r.db.Query(ctx, query, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []dom.ListItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// MaxPosition returns the highest position in the list; ok is false when the
// list has no items.
func (r *PGItemRepo) MaxPosition(ctx context.Context, listID int64) (int, bool, error) {
	var max *int
	err := r.db.QueryRow(ctx,
		`SELECT max(position) FROM list_items WHERE list_id = $1`, listID,
	).Scan(&max)
	if err != nil {
		return 0, false, err
	}
	if max == nil {
		return 0, false, nil
	}
	return *max, true, nil
}

// Insert persists a new item at exactly the given position. The per-list
// unique constraint on position is the backstop; callers clear the slot first.
func (r *PGItemRepo) Insert(ctx context.Context, listID int64, description string, position int, userID int64) (dom.ListItem, error) {
	query := `
		INSERT INTO list_items (list_id, description, position, last_user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + itemColumns
	return scanItem(r.db.QueryRow(ctx, query, listID, description, position, userID))
}

// ShiftPositionsFrom moves every position >= from in the list by delta, as a
// single statement so concurrent callers cannot interleave row by row.
func (r *PGItemRepo) ShiftPositionsFrom(ctx context.Context, listID int64, from, delta int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE list_items SET position = position + $3 WHERE list_id = $1 AND position >= $2`,
		listID, from, delta,
	)
	return err
}

// SetComplete flips the completion flag of one item the user can reach,
// either as the list owner or as a share guest. pgx.ErrNoRows when no
// accessible item matches.
func (r *PGItemRepo) SetComplete(ctx context.Context, userID, itemID int64, complete bool) (dom.ListItem, error) {
	query := `
		UPDATE list_items li
		SET complete = $2, updated_at = now(), last_user_id = $3
		FROM lists l
		LEFT JOIN shared_lists sl ON sl.owner_id = l.user_id AND sl.guest_id = $3
		WHERE li.id = $1
		  AND l.id = li.list_id
		  AND (l.user_id = $3 OR sl.guest_id = $3)
		RETURNING li.id, li.list_id, li.description, li.complete, li.position,
		          li.created_at, li.updated_at, li.last_user_id`
	return scanItem(r.db.QueryRow(ctx, query, itemID, complete, userID))
}

// DeleteCompleted removes every completed item of the list and returns how
// many rows went away. Remaining positions keep their gaps.
func (r *PGItemRepo) DeleteCompleted(ctx context.Context, listID int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM list_items WHERE list_id = $1 AND complete = TRUE`, listID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
