package handlers

import (
	"io"

	"github.com/bardleycoopster/todos/internal/auth"
	"github.com/bardleycoopster/todos/internal/bus"
	"github.com/bardleycoopster/todos/internal/dto"
	"github.com/bardleycoopster/todos/internal/service"

	"github.com/gin-gonic/gin"
)

// StreamHandler serves live change feeds over SSE. The bus already filters by
// list ID; each endpoint additionally filters by event kind so a client only
// gets the variant it asked for.
type StreamHandler struct {
	svc *service.ItemService
}

// NewStreamHandler returns a new StreamHandler.
func NewStreamHandler(svc *service.ItemService) *StreamHandler {
	return &StreamHandler{svc: svc}
}

// ItemEvents godoc
// @Summary      Live feed of item upserts for a list (SSE)
// @Tags         items
// @Produce      text/event-stream
// @Security     CookieAuth
// @Param        id   path  int  true  "List ID"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id}/items/events [get]
func (h *StreamHandler) ItemEvents(c *gin.Context) {
	h.stream(c, bus.ItemUpserted, func(c *gin.Context, ev bus.Event) {
		c.SSEvent("item", dto.ItemResponse{
			ID:          ev.Item.ID,
			ListID:      ev.Item.ListID,
			Description: ev.Item.Description,
			Complete:    ev.Item.Complete,
			Position:    ev.Item.Position,
			CreatedAt:   ev.Item.CreatedAt,
			UpdatedAt:   ev.Item.UpdatedAt,
			LastUserID:  ev.Item.LastUserID,
		})
	})
}

// RemovedEvents godoc
// @Summary      Live feed of bulk removals of completed items (SSE)
// @Tags         items
// @Produce      text/event-stream
// @Security     CookieAuth
// @Param        id   path  int  true  "List ID"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id}/removals/events [get]
func (h *StreamHandler) RemovedEvents(c *gin.Context) {
	h.stream(c, bus.CompletedRemoved, func(c *gin.Context, ev bus.Event) {
		c.SSEvent("removed", dto.RemovedResponse{ListID: ev.ListID, Count: ev.RemovedCount})
	})
}

// stream subscribes for the list, relays matching events until the client
// disconnects, and always deregisters the subscription on the way out.
func (h *StreamHandler) stream(c *gin.Context, kind bus.EventKind, send func(*gin.Context, bus.Event)) {
	userID := auth.UserIDFromContext(c)
	listID, ok := parseID(c, "id")
	if !ok {
		return
	}
	sub, err := h.svc.Subscribe(c.Request.Context(), userID, listID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer sub.Cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, open := <-sub.Events():
			if !open {
				return false
			}
			if ev.Kind == kind {
				send(c, ev)
			}
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
