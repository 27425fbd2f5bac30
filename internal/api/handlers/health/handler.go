package health

import (
	"context"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/estate-crm/internal/api/respond"
)

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

type Handler struct {
	checks  map[string]Check
	timeout time.Duration
}

func NewHandler(checks map[string]Check, timeout time.Duration) *Handler {
	return &Handler{checks: checks, timeout: timeout}
}

// Healthz runs every check and answers 503 when any of them fails.
func (h *Handler) Healthz(c *ginext.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	healthy := true

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			zlog.Logger.Warn().Err(err).Str("dependency", name).Msg("health check failed")
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}

	if !healthy {
		respond.JSON(c.Writer, http.StatusServiceUnavailable, status)
		return
	}

	respond.OK(c.Writer, status)
}
