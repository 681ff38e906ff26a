// Package bus is the in-process relay for committed list mutations. Services
// publish after their transaction commits; SSE handlers subscribe per list.
// Events are ephemeral: no replay, no durability, at-most-once delivery.
package bus

import (
	"sync"
	"time"
)

// EventKind tags the variants of Event.
type EventKind int

const (
	// ItemUpserted carries the item that was inserted or updated.
	ItemUpserted EventKind = iota + 1
	// CompletedRemoved carries the number of completed items deleted in bulk.
	CompletedRemoved
)

// Event is one committed mutation of a list.
type Event struct {
	Kind         EventKind
	ListID       int64
	Item         Item
	RemovedCount int64
}

// Item is the event payload for upserts. It mirrors domain.ListItem but keeps
// the bus free of upward dependencies.
type Item struct {
	ID          int64
	ListID      int64
	Description string
	Complete    bool
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastUserID  *int64
}

// defaultBuffer is each subscriber's delivery buffer. A subscriber that falls
// this far behind starts losing events; acceptable for a live feed where the
// client re-reads the list on reconnect.
const defaultBuffer = 16

// Bus fans out events to subscribers filtered by list ID. Construct one per
// process with New and pass it explicitly to publishers and subscribers.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]*Subscription
	buffer int
}

// New returns an empty Bus. buffer is the per-subscriber channel capacity;
// values < 1 fall back to the default.
func New(buffer int) *Bus {
	if buffer < 1 {
		buffer = defaultBuffer
	}
	return &Bus{subs: make(map[uint64]*Subscription), buffer: buffer}
}

// Subscribe registers a listener for events whose ListID equals listID.
// Events published before Subscribe returns are never delivered.
func (b *Bus) Subscribe(listID int64) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	sub := &Subscription{
		id:     b.nextID,
		listID: listID,
		ch:     make(chan Event, b.buffer),
		bus:    b,
	}
	b.subs[sub.id] = sub
	return sub
}

// Publish delivers ev to every live subscription filtered on ev.ListID.
// Delivery never blocks: a subscriber whose buffer is full misses the event.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs {
		if sub.listID != ev.ListID {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			// subscriber too slow, drop
		}
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// Subscription is one live listener. Cancel it when the client disconnects.
type Subscription struct {
	id     uint64
	listID int64
	ch     chan Event
	bus    *Bus
	once   sync.Once
}

// Events returns the delivery channel. It is closed by Cancel.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Cancel deregisters the subscription and closes its channel. Safe to call
// more than once; after it returns the bus no longer attempts delivery.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.bus.remove(s.id)
	})
}
