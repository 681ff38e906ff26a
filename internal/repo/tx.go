package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnavailable means a connection could not be acquired; the unit of work
// never started. Transient; callers may report it as such.
var ErrUnavailable = errors.New("storage unavailable")

// ItemTx runs a body against an item store bound to a single unit of work.
// Either every write in the body commits, or none do.
type ItemTx interface {
	Run(ctx context.Context, fn func(ctx context.Context, store ItemStore) error) error
}

// TxScope implements ItemTx over a pgx pool. Run acquires one connection,
// begins a transaction, and hands fn an ItemStore restricted to it. fn must
// not open another scope; nesting is a programming error, not supported.
type TxScope struct {
	pool *pgxpool.Pool
}

// NewTxScope returns a TxScope over pool.
func NewTxScope(pool *pgxpool.Pool) *TxScope {
	return &TxScope{pool: pool}
}

// Run executes fn inside one transaction. Commit happens only when fn returns
// nil; any error from fn or from commit rolls everything back. The connection
// is released on every exit path.
func (s *TxScope) Run(ctx context.Context, fn func(ctx context.Context, store ItemStore) error) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire: %v", ErrUnavailable, err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(ctx, NewPGItemRepo(tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
