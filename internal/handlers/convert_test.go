package handlers

import (
	"testing"
	"time"

	dom "github.com/bardleycoopster/todos/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemToResponseMapsEveryField(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	uid := int64(7)
	it := dom.ListItem{
		ID:          42,
		ListID:      5,
		Description: "buy milk",
		Complete:    true,
		Position:    3,
		CreatedAt:   created,
		UpdatedAt:   updated,
		LastUserID:  &uid,
	}

	resp := itemToResponse(it)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(5), resp.ListID)
	assert.Equal(t, "buy milk", resp.Description)
	assert.True(t, resp.Complete)
	assert.Equal(t, 3, resp.Position)
	assert.Equal(t, created, resp.CreatedAt)
	assert.Equal(t, updated, resp.UpdatedAt)
	require.NotNil(t, resp.LastUserID)
	assert.Equal(t, int64(7), *resp.LastUserID)
}

func TestItemToResponseKeepsNilLastUser(t *testing.T) {
	resp := itemToResponse(dom.ListItem{ID: 1, ListID: 2, Description: "x"})
	assert.Nil(t, resp.LastUserID)
}

func TestListToResponseMapsEveryField(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(2 * time.Hour)
	li := dom.List{
		ID:        9,
		OwnerID:   4,
		Name:      "groceries",
		Shared:    true,
		CreatedAt: created,
		UpdatedAt: updated,
	}

	resp := listToResponse(li)

	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, int64(4), resp.OwnerID)
	assert.Equal(t, "groceries", resp.Name)
	assert.True(t, resp.Shared)
	assert.Equal(t, created, resp.CreatedAt)
	assert.Equal(t, updated, resp.UpdatedAt)
}

func TestItemsToResponsesPreservesOrder(t *testing.T) {
	items := []dom.ListItem{
		{ID: 1, Position: 0},
		{ID: 2, Position: 2},
		{ID: 3, Position: 5},
	}
	out := itemsToResponses(items)
	require.Len(t, out, 3)
	assert.Equal(t, []int{0, 2, 5}, []int{out[0].Position, out[1].Position, out[2].Position})
}
