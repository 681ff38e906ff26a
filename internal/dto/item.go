package dto

import "time"

// CreateItemRequest is the JSON body for POST /lists/{id}/items. Position is
// optional: absent appends to the end, present inserts at exactly that slot
// and shifts the rest down.
type CreateItemRequest struct {
	Description string `json:"description" binding:"required,min=1,max=1000"`
	Position    *int   `json:"position" binding:"omitempty,min=0"`
}

// CompleteItemRequest is the JSON body for POST /items/{id}/complete.
type CompleteItemRequest struct {
	Complete *bool `json:"complete" binding:"required"`
}

// ItemResponse is one list item as seen by the caller.
type ItemResponse struct {
	ID          int64     `json:"id"`
	ListID      int64     `json:"list_id"`
	Description string    `json:"description"`
	Complete    bool      `json:"complete"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	LastUserID  *int64    `json:"last_user_id,omitempty"`
}

// ItemsResponse wraps the ordered items of a list.
type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// RemovedResponse reports a bulk removal of completed items.
type RemovedResponse struct {
	ListID int64 `json:"list_id"`
	Count  int64 `json:"count"`
}
