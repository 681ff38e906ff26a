package service

import (
	"context"
	"strings"
	"testing"

	dom "github.com/bardleycoopster/todos/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLists records shares and delegates reads to a fixed table.
type fakeLists struct {
	memLists
	shares map[[2]int64]bool
}

func newFakeLists() *fakeLists {
	return &fakeLists{shares: make(map[[2]int64]bool)}
}

func (f *fakeLists) Share(_ context.Context, ownerID, guestID int64) (bool, error) {
	key := [2]int64{ownerID, guestID}
	if f.shares[key] {
		return false, nil
	}
	f.shares[key] = true
	return true, nil
}

func (f *fakeLists) Unshare(_ context.Context, ownerID, guestID int64) (int64, error) {
	key := [2]int64{ownerID, guestID}
	if !f.shares[key] {
		return 0, nil
	}
	delete(f.shares, key)
	return 1, nil
}

type fakeUsers struct {
	users []dom.User
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (dom.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (f *fakeUsers) GetByUsernameOrEmail(_ context.Context, username, email string) (dom.User, error) {
	for _, u := range f.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (f *fakeUsers) Create(_ context.Context, username, email, passwordHash string) (dom.User, error) {
	u := dom.User{ID: int64(len(f.users) + 1), Username: username, Email: email, PasswordHash: passwordHash}
	f.users = append(f.users, u)
	return u, nil
}

func TestShareByUsername(t *testing.T) {
	lists := newFakeLists()
	users := &fakeUsers{users: []dom.User{{ID: 2, Username: "guest", Email: "guest@example.com"}}}
	svc := NewListService(lists, users)

	guest, err := svc.Share(context.Background(), 1, "guest", "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), guest.ID)
	assert.True(t, lists.shares[[2]int64{1, 2}])
}

func TestShareTwiceIsConflict(t *testing.T) {
	lists := newFakeLists()
	users := &fakeUsers{users: []dom.User{{ID: 2, Username: "guest"}}}
	svc := NewListService(lists, users)
	ctx := context.Background()

	_, err := svc.Share(ctx, 1, "guest", "")
	require.NoError(t, err)
	_, err = svc.Share(ctx, 1, "guest", "")
	assert.ErrorIs(t, err, ErrAlreadyShared)
}

func TestShareWithYourselfRejected(t *testing.T) {
	lists := newFakeLists()
	users := &fakeUsers{users: []dom.User{{ID: 1, Username: "me"}}}
	svc := NewListService(lists, users)

	_, err := svc.Share(context.Background(), 1, "me", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestShareUnknownUserNotFound(t *testing.T) {
	svc := NewListService(newFakeLists(), &fakeUsers{})

	_, err := svc.Share(context.Background(), 1, "nobody", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShareRequiresUsernameOrEmail(t *testing.T) {
	svc := NewListService(newFakeLists(), &fakeUsers{})

	_, err := svc.Share(context.Background(), 1, "  ", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestShareNormalizesEmail(t *testing.T) {
	lists := newFakeLists()
	users := &fakeUsers{users: []dom.User{{ID: 3, Username: "other", Email: "other@example.com"}}}
	svc := NewListService(lists, users)

	guest, err := svc.Share(context.Background(), 1, "", strings.ToUpper("Other@Example.com "))
	require.NoError(t, err)
	assert.Equal(t, int64(3), guest.ID)
}

func TestUnshareUnknownGuestNotFound(t *testing.T) {
	svc := NewListService(newFakeLists(), &fakeUsers{})

	err := svc.Unshare(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateListRejectsBlankName(t *testing.T) {
	svc := NewListService(newFakeLists(), &fakeUsers{})

	_, err := svc.Create(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, ErrValidation)
}
