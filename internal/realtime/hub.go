// Package realtime fans table change events out to in-process subscribers.
// Subscribers use events only to drop cached data, never to patch it.
package realtime

import (
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

// Tables whose changes travel through the feed.
const (
	TableClients         = "clients"
	TableNotifications   = "notifications"
	TableClientFavorites = "client_favorites"
	// TableSystem carries operator-facing alerts rather than row changes.
	TableSystem = "system"
)

// Op is the kind of change.
type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpAlert  Op = "alert"
)

// Event describes a change to a table. IDs lists the affected rows when known;
// UserID narrows the audience for per-user data such as notifications.
// Origin names the instance that raised the event and is empty for events
// raised in this process.
type Event struct {
	Table   string      `json:"table"`
	Op      Op          `json:"op"`
	IDs     []uuid.UUID `json:"ids,omitempty"`
	UserID  uuid.UUID   `json:"user_id,omitempty"`
	Message string      `json:"message,omitempty"`
	Origin  string      `json:"origin,omitempty"`
}

// Remote reports whether e came from another instance.
func (e Event) Remote() bool {
	return e.Origin != ""
}

// Handler receives events for the table it subscribed to.
type Handler func(Event)

// Any subscribes to every table.
const Any = "*"

type subscription struct {
	table string
	fn    Handler
}

// Hub is an in-process event fan-out keyed by table name.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]subscription
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]subscription)}
}

// Subscribe registers fn for events on table (or Any) and returns a function removing it.
func (h *Hub) Subscribe(table string, fn Handler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.subs[id] = subscription{table: table, fn: fn}

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// Publish delivers e synchronously to every matching subscriber.
// A panicking subscriber is logged and does not stop delivery to the rest.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	targets := make([]Handler, 0, len(h.subs))
	for _, s := range h.subs {
		if s.table == e.Table || s.table == Any {
			targets = append(targets, s.fn)
		}
	}
	h.mu.RUnlock()

	for _, fn := range targets {
		deliver(fn, e)
	}
}

func deliver(fn Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Logger.Error().Interface("panic", r).Str("table", e.Table).Msg("realtime subscriber panicked")
		}
	}()

	fn(e)
}
