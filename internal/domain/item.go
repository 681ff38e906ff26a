package domain

import "time"

// ListItem is one entry of a list. Position orders items within their list:
// unique per list, gaps allowed after deletions.
type ListItem struct {
	ID          int64
	ListID      int64
	Description string
	Complete    bool
	Position    int

	CreatedAt  time.Time
	UpdatedAt  time.Time
	LastUserID *int64
}
