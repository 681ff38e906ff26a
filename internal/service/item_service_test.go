package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/bardleycoopster/todos/internal/bus"
	dom "github.com/bardleycoopster/todos/internal/domain"
	"github.com/bardleycoopster/todos/internal/repo"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory ItemStore for exercising the allocator without
// Postgres.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]dom.ListItem
}

func newMemStore() *memStore {
	return &memStore{items: make(map[int64]dom.ListItem)}
}

func (s *memStore) ItemsOrdered(_ context.Context, listID int64) ([]dom.ListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []dom.ListItem
	for _, it := range s.items {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *memStore) MaxPosition(_ context.Context, listID int64) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	max, found := 0, false
	for _, it := range s.items {
		if it.ListID == listID && (!found || it.Position > max) {
			max, found = it.Position, true
		}
	}
	return max, found, nil
}

func (s *memStore) Insert(_ context.Context, listID int64, description string, position int, userID int64) (dom.ListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ListID == listID && it.Position == position {
			return dom.ListItem{}, errors.New("duplicate position in list")
		}
	}
	s.nextID++
	now := time.Now().UTC()
	uid := userID
	it := dom.ListItem{
		ID: s.nextID, ListID: listID, Description: description, Position: position,
		CreatedAt: now, UpdatedAt: now, LastUserID: &uid,
	}
	s.items[it.ID] = it
	return it, nil
}

func (s *memStore) ShiftPositionsFrom(_ context.Context, listID int64, from, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, it := range s.items {
		if it.ListID == listID && it.Position >= from {
			it.Position += delta
			s.items[id] = it
		}
	}
	return nil
}

func (s *memStore) SetComplete(_ context.Context, userID, itemID int64, complete bool) (dom.ListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[itemID]
	if !ok {
		return dom.ListItem{}, pgx.ErrNoRows
	}
	it.Complete = complete
	it.UpdatedAt = time.Now().UTC()
	it.LastUserID = &userID
	s.items[itemID] = it
	return it, nil
}

func (s *memStore) DeleteCompleted(_ context.Context, listID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, it := range s.items {
		if it.ListID == listID && it.Complete {
			delete(s.items, id)
			n++
		}
	}
	return n, nil
}

func (s *memStore) snapshot() (map[int64]dom.ListItem, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := make(map[int64]dom.ListItem, len(s.items))
	for id, it := range s.items {
		snap[id] = it
	}
	return snap, s.nextID
}

func (s *memStore) restore(snap map[int64]dom.ListItem, nextID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = snap
	s.nextID = nextID
}

// memTx mimics commit-or-rollback with a snapshot. wrap, when set, decorates
// the store fn sees, used to inject failures mid-transaction.
type memTx struct {
	store *memStore
	wrap  func(repo.ItemStore) repo.ItemStore
}

func (t *memTx) Run(ctx context.Context, fn func(ctx context.Context, store repo.ItemStore) error) error {
	snap, nextID := t.store.snapshot()
	var st repo.ItemStore = t.store
	if t.wrap != nil {
		st = t.wrap(st)
	}
	if err := fn(ctx, st); err != nil {
		t.store.restore(snap, nextID)
		return err
	}
	return nil
}

// failingInsert passes everything through except Insert.
type failingInsert struct {
	repo.ItemStore
}

func (f failingInsert) Insert(context.Context, int64, string, int, int64) (dom.ListItem, error) {
	return dom.ListItem{}, errors.New("simulated insert failure")
}

// memLists grants access from an explicit (listID, userID) table.
type memLists struct {
	access map[int64][]int64
}

func (m *memLists) GetForUser(_ context.Context, listID, userID int64) (dom.List, error) {
	for _, uid := range m.access[listID] {
		if uid == userID {
			return dom.List{ID: listID, OwnerID: m.access[listID][0], Name: "test"}, nil
		}
	}
	return dom.List{}, pgx.ErrNoRows
}

func (m *memLists) ListForUser(context.Context, int64) ([]dom.List, error)   { return nil, nil }
func (m *memLists) Create(context.Context, int64, string) (dom.List, error)  { return dom.List{}, nil }
func (m *memLists) Delete(context.Context, int64, int64) (int64, error)      { return 0, nil }
func (m *memLists) Share(context.Context, int64, int64) (bool, error)        { return false, nil }
func (m *memLists) Unshare(context.Context, int64, int64) (int64, error)     { return 0, nil }
func (m *memLists) SharedUsers(context.Context, int64) ([]dom.User, error)   { return nil, nil }

const (
	ownerID = int64(10)
	listID  = int64(1)
)

func newTestService(store *memStore, tx *memTx) (*ItemService, *bus.Bus) {
	b := bus.New(16)
	lists := &memLists{access: map[int64][]int64{listID: {ownerID}}}
	return NewItemService(store, tx, lists, b, nil), b
}

func intPtr(v int) *int { return &v }

func positions(items []dom.ListItem) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Position
	}
	return out
}

func TestCreateAppendToEmptyListStartsAtZero(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store, &memTx{store: store})

	it, err := svc.Create(context.Background(), ownerID, listID, "first", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, it.Position)
}

func TestCreateAppendUsesMaxPlusOneAcrossGaps(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store, &memTx{store: store})
	ctx := context.Background()
	for _, pos := range []int{0, 2, 5} {
		_, err := store.Insert(ctx, listID, "seed", pos, ownerID)
		require.NoError(t, err)
	}

	it, err := svc.Create(ctx, ownerID, listID, "appended", nil)
	require.NoError(t, err)
	assert.Equal(t, 6, it.Position)
}

func TestCreateExplicitPositionShiftsTail(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store, &memTx{store: store})
	ctx := context.Background()
	for _, desc := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, ownerID, listID, desc, nil)
		require.NoError(t, err)
	}

	it, err := svc.Create(ctx, ownerID, listID, "new", intPtr(1))
	require.NoError(t, err)
	assert.Equal(t, 1, it.Position)

	items, err := svc.Items(ctx, ownerID, listID)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, positions(items))
	assert.Equal(t, []string{"a", "new", "b", "c"}, []string{
		items[0].Description, items[1].Description, items[2].Description, items[3].Description,
	})
}

func TestPositionsStayUniqueUnderMixedInserts(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store, &memTx{store: store})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, ownerID, listID, "tail", nil)
		require.NoError(t, err)
	}
	for _, pos := range []int{0, 3, 3, 1, 0} {
		_, err := svc.Create(ctx, ownerID, listID, "mid", intPtr(pos))
		require.NoError(t, err)
	}

	items, err := svc.Items(ctx, ownerID, listID)
	require.NoError(t, err)
	seen := make(map[int]bool)
	for _, it := range items {
		assert.False(t, seen[it.Position], "duplicate position %d", it.Position)
		seen[it.Position] = true
	}
}

func TestCreateRejectsEmptyDescription(t *testing.T) {
	store := newMemStore()
	svc, b := newTestService(store, &memTx{store: store})
	sub := b.Subscribe(listID)
	defer sub.Cancel()

	_, err := svc.Create(context.Background(), ownerID, listID, "   ", nil)
	assert.ErrorIs(t, err, ErrValidation)
	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestCreateRejectsNegativePosition(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store, &memTx{store: store})

	_, err := svc.Create(context.Background(), ownerID, listID, "x", intPtr(-1))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateWithoutAccessIsNotFound(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store, &memTx{store: store})

	_, err := svc.Create(context.Background(), int64(99), listID, "x", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRollbackAfterShiftPublishesNothing(t *testing.T) {
	store := newMemStore()
	tx := &memTx{
		store: store,
		wrap:  func(st repo.ItemStore) repo.ItemStore { return failingInsert{st} },
	}
	svc, b := newTestService(store, tx)
	ctx := context.Background()
	for _, pos := range []int{0, 1, 2} {
		_, err := store.Insert(ctx, listID, "seed", pos, ownerID)
		require.NoError(t, err)
	}
	sub := b.Subscribe(listID)
	defer sub.Cancel()

	_, err := svc.Create(ctx, ownerID, listID, "doomed", intPtr(1))
	require.ErrorIs(t, err, ErrStorage)

	// The shift rolled back: positions are exactly as before.
	items, err := store.ItemsOrdered(ctx, listID)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, positions(items))

	select {
	case ev := <-sub.Events():
		t.Fatalf("phantom event after rollback: %+v", ev)
	default:
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store, &memTx{store: store})
	ctx := context.Background()
	seed, err := store.Insert(ctx, listID, "task", 0, ownerID)
	require.NoError(t, err)

	first, err := svc.Complete(ctx, ownerID, seed.ID, true)
	require.NoError(t, err)
	second, err := svc.Complete(ctx, ownerID, seed.ID, true)
	require.NoError(t, err)

	assert.True(t, second.Complete)
	assert.Equal(t, first.Position, second.Position)
	assert.Equal(t, first.Description, second.Description)
	assert.Equal(t, first.ListID, second.ListID)
}

func TestCompleteUnknownItemIsNotFound(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store, &memTx{store: store})

	_, err := svc.Complete(context.Background(), ownerID, 12345, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveCompletedCountsAndKeepsIncomplete(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store, &memTx{store: store})
	ctx := context.Background()
	for pos, done := range []bool{true, false, true, false, true} {
		it, err := store.Insert(ctx, listID, "seed", pos, ownerID)
		require.NoError(t, err)
		if done {
			_, err = store.SetComplete(ctx, ownerID, it.ID, true)
			require.NoError(t, err)
		}
	}

	count, err := svc.RemoveCompleted(ctx, ownerID, listID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	items, err := store.ItemsOrdered(ctx, listID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Survivors keep their positions, gaps included.
	assert.Equal(t, []int{1, 3}, positions(items))
}

func TestRemoveCompletedPublishesZeroCount(t *testing.T) {
	store := newMemStore()
	svc, b := newTestService(store, &memTx{store: store})
	sub := b.Subscribe(listID)
	defer sub.Cancel()

	count, err := svc.RemoveCompleted(context.Background(), ownerID, listID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	ev := <-sub.Events()
	assert.Equal(t, bus.CompletedRemoved, ev.Kind)
	assert.Equal(t, int64(0), ev.RemovedCount)
}

func TestSubscribeRequiresAccess(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store, &memTx{store: store})

	_, err := svc.Subscribe(context.Background(), int64(99), listID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// The full path: existing item at position 0, an explicit insert at 0 pushes
// it to 1, and a live subscriber sees exactly one upsert for the new item.
func TestInsertAtHeadEndToEnd(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store, &memTx{store: store})
	ctx := context.Background()
	a, err := store.Insert(ctx, listID, "x", 0, ownerID)
	require.NoError(t, err)

	sub, err := svc.Subscribe(ctx, ownerID, listID)
	require.NoError(t, err)
	defer sub.Cancel()

	created, err := svc.Create(ctx, ownerID, listID, "y", intPtr(0))
	require.NoError(t, err)

	items, err := svc.Items(ctx, ownerID, listID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, 0, items[0].Position)
	assert.Equal(t, "y", items[0].Description)
	assert.Equal(t, a.ID, items[1].ID)
	assert.Equal(t, 1, items[1].Position)
	assert.Equal(t, "x", items[1].Description)

	ev := <-sub.Events()
	assert.Equal(t, bus.ItemUpserted, ev.Kind)
	assert.Equal(t, created.ID, ev.Item.ID)
	assert.Equal(t, 0, ev.Item.Position)
	select {
	case extra := <-sub.Events():
		t.Fatalf("expected exactly one event, got extra %+v", extra)
	default:
	}
}

func TestConcurrentAppendsStayUnique(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store, &memTx{store: store})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, ownerID, listID, "concurrent", nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := store.ItemsOrdered(ctx, listID)
	require.NoError(t, err)
	require.Len(t, items, 20)
	seen := make(map[int]bool)
	for _, it := range items {
		assert.False(t, seen[it.Position], "duplicate position %d", it.Position)
		seen[it.Position] = true
	}
}
