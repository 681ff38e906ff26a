package service

import (
	"errors"
	"fmt"

	"github.com/bardleycoopster/todos/internal/repo"

	"github.com/jackc/pgx/v5"
)

var (
	ErrValidation    = errors.New("invalid input")
	ErrAccessDenied  = errors.New("access denied")
	ErrNotFound      = errors.New("not found")
	ErrStorage       = errors.New("storage failure")
	ErrAlreadyShared = errors.New("lists already shared with this user")
)

// translateStorage classifies a repository error into the service taxonomy.
// Nothing from the driver leaks past here unclassified: no-rows becomes
// ErrNotFound, an exhausted pool stays repo.ErrUnavailable, everything else
// is an ErrStorage with the cause kept in the message for diagnostics.
func translateStorage(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, repo.ErrUnavailable):
		return err
	default:
		return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
	}
}
