package dto

import "time"

// CreateListRequest is the JSON body for POST /lists.
type CreateListRequest struct {
	Name string `json:"name" binding:"required,min=1,max=120"`
}

// ListResponse is one list as seen by the caller.
type ListResponse struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Name      string    `json:"name"`
	Shared    bool      `json:"shared"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListsResponse wraps the lists collection.
type ListsResponse struct {
	Lists []ListResponse `json:"lists"`
}
