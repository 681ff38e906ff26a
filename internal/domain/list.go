package domain

import "time"

// List is a named collection of items owned by one user. A list is visible to
// its owner and to every guest the owner has shared lists with.
type List struct {
	ID      int64
	OwnerID int64
	Name    string
	Shared  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
