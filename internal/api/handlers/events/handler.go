// Package events streams realtime change events to dashboards over SSE.
// Dashboards use them only to invalidate cached queries.
package events

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/estate-crm/internal/api/middleware"
	"github.com/aliskhannn/estate-crm/internal/realtime"
)

const (
	DefaultHeartbeat = 25 * time.Second
	DefaultBuffer    = 64
)

type subscriber interface {
	Subscribe(table string, fn realtime.Handler) func()
}

// Handler serves GET /api/events.
type Handler struct {
	hub       subscriber
	heartbeat time.Duration
	buffer    int
}

func NewHandler(hub subscriber, heartbeat time.Duration) *Handler {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}

	return &Handler{hub: hub, heartbeat: heartbeat, buffer: DefaultBuffer}
}

// visible reports whether e may be shown to userID. Events without a user are broadcast.
func visible(e realtime.Event, userID uuid.UUID) bool {
	return e.UserID == uuid.Nil || e.UserID == userID
}

// Stream writes "change" events until the client goes away. A slow client that
// overflows its buffer gets one "resync" event telling it to drop every cached view.
func (h *Handler) Stream(c *ginext.Context) {
	userID := middleware.UserID(c)
	ctx := c.Request.Context()

	events := make(chan realtime.Event, h.buffer)
	var overflow atomic.Bool

	unsubscribe := h.hub.Subscribe(realtime.Any, func(e realtime.Event) {
		if !visible(e, userID) {
			return
		}

		select {
		case events <- e:
		default:
			overflow.Store(true)
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	zlog.Logger.Debug().Str("user_id", userID.String()).Msg("event stream opened")

	c.Stream(func(w io.Writer) bool {
		if overflow.CompareAndSwap(true, false) {
			c.SSEvent("resync", "")
			return true
		}

		select {
		case <-ctx.Done():
			// flush what was queued before the disconnect
			for {
				select {
				case e := <-events:
					c.SSEvent("change", e)
				default:
					return false
				}
			}
		case e := <-events:
			c.SSEvent("change", e)
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
		}

		return true
	})

	zlog.Logger.Debug().Str("user_id", userID.String()).Msg("event stream closed")
}
