package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dom "github.com/bardleycoopster/todos/internal/domain"
	"github.com/bardleycoopster/todos/internal/repo"

	"github.com/jackc/pgx/v5"
)

// ListService handles list CRUD and the sharing relation.
type ListService struct {
	lists repo.ListStore
	users repo.UserStore
}

// NewListService returns a new ListService.
func NewListService(lists repo.ListStore, users repo.UserStore) *ListService {
	return &ListService{lists: lists, users: users}
}

// Lists returns the user's own lists plus lists shared with them.
func (s *ListService) Lists(ctx context.Context, userID int64) ([]dom.List, error) {
	lists, err := s.lists.ListForUser(ctx, userID)
	if err != nil {
		return nil, translateStorage("read lists", err)
	}
	return lists, nil
}

// Get returns one list the user can access.
func (s *ListService) Get(ctx context.Context, userID, listID int64) (dom.List, error) {
	li, err := s.lists.GetForUser(ctx, listID, userID)
	if err != nil {
		return dom.List{}, translateStorage("read list", err)
	}
	return li, nil
}

// Create makes a new list owned by the user.
func (s *ListService) Create(ctx context.Context, userID int64, name string) (dom.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.List{}, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	li, err := s.lists.Create(ctx, userID, name)
	if err != nil {
		return dom.List{}, translateStorage("create list", err)
	}
	return li, nil
}

// Delete removes a list the user owns, items included.
func (s *ListService) Delete(ctx context.Context, userID, listID int64) error {
	n, err := s.lists.Delete(ctx, userID, listID)
	if err != nil {
		return translateStorage("delete list", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Share grants the user identified by username or email access to every list
// the caller owns. Sharing with yourself or repeating a share is rejected.
func (s *ListService) Share(ctx context.Context, userID int64, username, email string) (dom.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" && email == "" {
		return dom.User{}, fmt.Errorf("%w: username or email is required", ErrValidation)
	}
	guest, err := s.users.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, translateStorage("find share target", err)
	}
	if guest.ID == userID {
		return dom.User{}, fmt.Errorf("%w: cannot share with yourself", ErrValidation)
	}
	created, err := s.lists.Share(ctx, userID, guest.ID)
	if err != nil {
		return dom.User{}, translateStorage("share lists", err)
	}
	if !created {
		return dom.User{}, ErrAlreadyShared
	}
	return guest, nil
}

// Unshare revokes a guest's access to the caller's lists.
func (s *ListService) Unshare(ctx context.Context, userID, guestID int64) error {
	n, err := s.lists.Unshare(ctx, userID, guestID)
	if err != nil {
		return translateStorage("unshare lists", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SharedUsers returns everyone the caller currently shares lists with.
func (s *ListService) SharedUsers(ctx context.Context, userID int64) ([]dom.User, error) {
	users, err := s.lists.SharedUsers(ctx, userID)
	if err != nil {
		return nil, translateStorage("read shared users", err)
	}
	return users, nil
}
