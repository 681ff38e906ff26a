package handlers

import (
	"net/http"

	"github.com/bardleycoopster/todos/internal/auth"
	dom "github.com/bardleycoopster/todos/internal/domain"
	"github.com/bardleycoopster/todos/internal/dto"
	"github.com/bardleycoopster/todos/internal/service"

	"github.com/gin-gonic/gin"
)

// ItemHandler handles item reads and mutations.
type ItemHandler struct {
	svc *service.ItemService
}

// NewItemHandler returns a new ItemHandler.
func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// Items godoc
// @Summary      List items of a list, ordered by position
// @Tags         items
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "List ID"
// @Success      200  {object}  dto.ItemsResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /lists/{id}/items [get]
func (h *ItemHandler) Items(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := h.svc.Items(c.Request.Context(), userID, listID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ItemsResponse{Items: itemsToResponses(items)})
}

// Create godoc
// @Summary      Create an item, appended or at an explicit position
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "List ID"
// @Param        body  body      dto.CreateItemRequest  true  "Item body"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /lists/{id}/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.svc.Create(c.Request.Context(), userID, listID, req.Description, req.Position)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, itemToResponse(item))
}

// Complete godoc
// @Summary      Set an item's completion flag
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Item ID"
// @Param        body  body      dto.CompleteItemRequest  true  "Completion flag"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /items/{id}/complete [post]
func (h *ItemHandler) Complete(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	itemID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CompleteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.svc.Complete(c.Request.Context(), userID, itemID, *req.Complete)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemToResponse(item))
}

// RemoveCompleted godoc
// @Summary      Delete all completed items of a list
// @Tags         items
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "List ID"
// @Success      200  {object}  dto.RemovedResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /lists/{id}/items/completed [delete]
func (h *ItemHandler) RemoveCompleted(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}
	count, err := h.svc.RemoveCompleted(c.Request.Context(), userID, listID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RemovedResponse{ListID: listID, Count: count})
}

// itemToResponse maps the domain entity onto the wire shape, every field.
func itemToResponse(it dom.ListItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID,
		ListID:      it.ListID,
		Description: it.Description,
		Complete:    it.Complete,
		Position:    it.Position,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
		LastUserID:  it.LastUserID,
	}
}

func itemsToResponses(items []dom.ListItem) []dto.ItemResponse {
	out := make([]dto.ItemResponse, len(items))
	for i := range items {
		out[i] = itemToResponse(items[i])
	}
	return out
}
