package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bardleycoopster/todos/internal/bus"
	"github.com/bardleycoopster/todos/internal/cache"
	dom "github.com/bardleycoopster/todos/internal/domain"
	"github.com/bardleycoopster/todos/internal/repo"

	"golang.org/x/sync/singleflight"
)

// ItemService owns item positions. It is the only writer of the position
// field: appends take max+1, explicit inserts shift the tail up by one first,
// and both run inside a single transaction so no partial shift is ever
// visible. Committed mutations are published to the change bus, strictly
// after commit.
type ItemService struct {
	items repo.ItemStore
	tx    repo.ItemTx
	lists repo.ListStore
	bus   *bus.Bus
	cache *cache.ItemCache
	sf    singleflight.Group
	locks listLocks
}

// NewItemService creates an ItemService. If c is nil, caching is disabled.
func NewItemService(items repo.ItemStore, tx repo.ItemTx, lists repo.ListStore, b *bus.Bus, c *cache.ItemCache) *ItemService {
	return &ItemService{items: items, tx: tx, lists: lists, bus: b, cache: c}
}

// listLocks hands out one mutex per list ID. Position writes to the same list
// are serialized here so the shift+insert atomicity does not depend on the
// database's configured isolation level; the per-list unique constraint on
// position remains the backstop. Mutexes are never freed; the set of active
// lists is small relative to process lifetime.
type listLocks struct {
	mu sync.Mutex
	m  map[int64]*sync.Mutex
}

func (l *listLocks) lockFor(listID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.m == nil {
		l.m = make(map[int64]*sync.Mutex)
	}
	mu, ok := l.m[listID]
	if !ok {
		mu = &sync.Mutex{}
		l.m[listID] = mu
	}
	return mu
}

// Create inserts a new item. Without a position it appends after the current
// maximum; with one it shifts every item at or past that slot up by one and
// inserts exactly there. The ItemUpserted event goes out only after the
// transaction commits.
func (s *ItemService) Create(ctx context.Context, userID, listID int64, description string, position *int) (dom.ListItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return dom.ListItem{}, fmt.Errorf("%w: description must not be empty", ErrValidation)
	}
	if position != nil && *position < 0 {
		return dom.ListItem{}, fmt.Errorf("%w: position must not be negative", ErrValidation)
	}
	if _, err := s.lists.GetForUser(ctx, listID, userID); err != nil {
		return dom.ListItem{}, translateStorage("check list access", err)
	}

	mu := s.locks.lockFor(listID)
	mu.Lock()
	defer mu.Unlock()

	var item dom.ListItem
	err := s.tx.Run(ctx, func(ctx context.Context, store repo.ItemStore) error {
		pos := 0
		if position == nil {
			max, ok, err := store.MaxPosition(ctx, listID)
			if err != nil {
				return err
			}
			if ok {
				pos = max + 1
			}
		} else {
			pos = *position
			if err := store.ShiftPositionsFrom(ctx, listID, pos, 1); err != nil {
				return err
			}
		}
		var err error
		item, err = store.Insert(ctx, listID, description, pos, userID)
		return err
	})
	if err != nil {
		return dom.ListItem{}, translateStorage("create item", err)
	}

	s.invalidate(ctx, listID)
	s.bus.Publish(upsertEvent(item))
	return item, nil
}

// Complete sets the completion flag of one item the user can reach. Position
// is untouched. Idempotent: repeating the call only moves the updated_at
// timestamp.
func (s *ItemService) Complete(ctx context.Context, userID, itemID int64, complete bool) (dom.ListItem, error) {
	item, err := s.items.SetComplete(ctx, userID, itemID, complete)
	if err != nil {
		return dom.ListItem{}, translateStorage("complete item", err)
	}
	s.invalidate(ctx, item.ListID)
	s.bus.Publish(upsertEvent(item))
	return item, nil
}

// RemoveCompleted deletes every completed item of the list and returns the
// count, which may be zero. Remaining items keep their positions, gaps
// included.
func (s *ItemService) RemoveCompleted(ctx context.Context, userID, listID int64) (int64, error) {
	if _, err := s.lists.GetForUser(ctx, listID, userID); err != nil {
		return 0, translateStorage("check list access", err)
	}
	count, err := s.items.DeleteCompleted(ctx, listID)
	if err != nil {
		return 0, translateStorage("remove completed items", err)
	}
	s.invalidate(ctx, listID)
	s.bus.Publish(bus.Event{Kind: bus.CompletedRemoved, ListID: listID, RemovedCount: count})
	return count, nil
}

// Items returns the list's items ordered by position ascending.
func (s *ItemService) Items(ctx context.Context, userID, listID int64) ([]dom.ListItem, error) {
	if _, err := s.lists.GetForUser(ctx, listID, userID); err != nil {
		return nil, translateStorage("check list access", err)
	}
	if s.cache != nil {
		key := "items:" + strconv.FormatInt(listID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if items, err := s.cache.GetItems(ctx, listID); err == nil && items != nil {
				return items, nil
			}
			items, err := s.items.ItemsOrdered(ctx, listID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetItems(ctx, listID, items)
			return items, nil
		})
		if err != nil {
			return nil, translateStorage("read items", err)
		}
		return v.([]dom.ListItem), nil
	}
	items, err := s.items.ItemsOrdered(ctx, listID)
	if err != nil {
		return nil, translateStorage("read items", err)
	}
	return items, nil
}

// Subscribe opens a live event feed for the list after checking the user can
// access it. Cancel the subscription when the client goes away.
func (s *ItemService) Subscribe(ctx context.Context, userID, listID int64) (*bus.Subscription, error) {
	if _, err := s.lists.GetForUser(ctx, listID, userID); err != nil {
		return nil, translateStorage("check list access", err)
	}
	return s.bus.Subscribe(listID), nil
}

func (s *ItemService) invalidate(ctx context.Context, listID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, listID)
	}
}

func upsertEvent(it dom.ListItem) bus.Event {
	return bus.Event{
		Kind:   bus.ItemUpserted,
		ListID: it.ListID,
		Item: bus.Item{
			ID:          it.ID,
			ListID:      it.ListID,
			Description: it.Description,
			Complete:    it.Complete,
			Position:    it.Position,
			CreatedAt:   it.CreatedAt,
			UpdatedAt:   it.UpdatedAt,
			LastUserID:  it.LastUserID,
		},
	}
}
