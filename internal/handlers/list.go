package handlers

import (
	"net/http"

	"github.com/bardleycoopster/todos/internal/auth"
	dom "github.com/bardleycoopster/todos/internal/domain"
	"github.com/bardleycoopster/todos/internal/dto"
	"github.com/bardleycoopster/todos/internal/service"

	"github.com/gin-gonic/gin"
)

// ListHandler handles list CRUD and sharing.
type ListHandler struct {
	svc *service.ListService
}

// NewListHandler returns a new ListHandler.
func NewListHandler(svc *service.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// Lists godoc
// @Summary      List own and shared lists
// @Tags         lists
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListsResponse
// @Failure      500  {object}  map[string]string
// @Router       /lists [get]
func (h *ListHandler) Lists(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	lists, err := h.svc.Lists(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListsResponse{Lists: listsToResponses(lists)})
}

// Create godoc
// @Summary      Create a list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateListRequest  true  "List body"
// @Success      201   {object}  dto.ListResponse
// @Failure      400   {object}  map[string]string
// @Router       /lists [post]
func (h *ListHandler) Create(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	li, err := h.svc.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listToResponse(li))
}

// Delete godoc
// @Summary      Delete an owned list and its items
// @Tags         lists
// @Security     CookieAuth
// @Param        id   path  int  true  "List ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id} [delete]
func (h *ListHandler) Delete(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Share godoc
// @Summary      Share all owned lists with another user
// @Tags         share
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.ShareRequest  true  "Username or email"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /share [post]
func (h *ListHandler) Share(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	guest, err := h.svc.Share(c.Request.Context(), userID, req.Username, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.UserResponse{ID: guest.ID, Username: guest.Username, Email: guest.Email})
}

// Unshare godoc
// @Summary      Stop sharing lists with a user
// @Tags         share
// @Security     CookieAuth
// @Param        guestID  path  int  true  "Guest user ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /share/{guestID} [delete]
func (h *ListHandler) Unshare(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	guestID, ok := parseID(c, "guestID")
	if !ok {
		return
	}
	if err := h.svc.Unshare(c.Request.Context(), userID, guestID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SharedUsers godoc
// @Summary      List users the caller shares lists with
// @Tags         share
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   dto.UserResponse
// @Failure      500  {object}  map[string]string
// @Router       /share [get]
func (h *ListHandler) SharedUsers(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	users, err := h.svc.SharedUsers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.UserResponse, len(users))
	for i, u := range users {
		out[i] = dto.UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
	}
	c.JSON(http.StatusOK, out)
}

func listToResponse(li dom.List) dto.ListResponse {
	return dto.ListResponse{
		ID:        li.ID,
		OwnerID:   li.OwnerID,
		Name:      li.Name,
		Shared:    li.Shared,
		CreatedAt: li.CreatedAt,
		UpdatedAt: li.UpdatedAt,
	}
}

func listsToResponses(lists []dom.List) []dto.ListResponse {
	out := make([]dto.ListResponse, len(lists))
	for i := range lists {
		out[i] = listToResponse(lists[i])
	}
	return out
}
