package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/estate-crm/internal/api/middleware"
	"github.com/aliskhannn/estate-crm/internal/api/respond"
	"github.com/aliskhannn/estate-crm/internal/config"
	"github.com/aliskhannn/estate-crm/internal/locale"
	"github.com/aliskhannn/estate-crm/internal/model"
)

// MaxListLimit caps the limit query parameter.
const MaxListLimit = 200

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Handler serves the caller's notification inbox.
type Handler struct {
	service notificationService
	cfg     *config.Config
}

func NewHandler(s notificationService, cfg *config.Config) *Handler {
	return &Handler{service: s, cfg: cfg}
}

func (h *Handler) fail(c *ginext.Context, err error, msg string) {
	if errors.Is(err, context.Canceled) {
		return
	}

	zlog.Logger.Error().Err(err).Str("path", c.FullPath()).Msg(msg)
	lang := middleware.Lang(c, locale.Parse(h.cfg.Roster.DefaultLanguage, locale.Arabic))
	respond.AppError(c.Writer, lang, err)
}

func parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str("id", idStr).Msg("invalid id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}

// List returns the newest notifications first.
func (h *Handler) List(c *ginext.Context) {
	limit := 0

	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 || n > MaxListLimit {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("limit must be between 1 and %d", MaxListLimit))
			return
		}
		limit = n
	}

	list, err := h.service.ListForUser(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		h.fail(c, err, "failed to list notifications")
		return
	}

	respond.OK(c.Writer, list)
}

func (h *Handler) UnreadCount(c *ginext.Context) {
	n, err := h.service.UnreadCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.fail(c, err, "failed to count unread notifications")
		return
	}

	respond.OK(c.Writer, map[string]int{"unread": n})
}

func (h *Handler) MarkRead(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.fail(c, err, "failed to mark notification read")
		return
	}

	respond.OK(c.Writer, "notification read")
}

func (h *Handler) Delete(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.fail(c, err, "failed to delete notification")
		return
	}

	respond.OK(c.Writer, "notification deleted")
}
