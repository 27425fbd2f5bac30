package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/estate-crm/internal/apperr"
	"github.com/aliskhannn/estate-crm/internal/cache"
	"github.com/aliskhannn/estate-crm/internal/locale"
	"github.com/aliskhannn/estate-crm/internal/metrics"
	"github.com/aliskhannn/estate-crm/internal/model"
	"github.com/aliskhannn/estate-crm/internal/rabbitmq/queue"
	"github.com/aliskhannn/estate-crm/internal/realtime"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	HasUnread(ctx context.Context, userID, clientID uuid.UUID, typ string) (bool, error)
	CreateIfAbsent(ctx context.Context, n model.Notification) (model.Notification, bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type profileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.Profile, error)
}

type changePublisher interface {
	Publish(e realtime.Event) error
}

type forwardPublisher interface {
	Publish(msg queue.ForwardMessage, strategy retry.Strategy) error
}

type unreadCache interface {
	Get(ctx context.Context, userID uuid.UUID) (int, error)
	Set(ctx context.Context, userID uuid.UUID, n int) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// Notifier delivers a message outside the dashboard.
type Notifier interface {
	Send(to string, msg string) error
}

// Delivery channels a notification can be forwarded to.
const (
	ChannelEmail    = "email"
	ChannelTelegram = "telegram"
)

// DefaultListLimit caps the inbox when the caller gives no limit.
const DefaultListLimit = 50

// Service owns the notification inbox and the delayed-client deduplication.
type Service struct {
	repo      notificationRepository
	profiles  profileRepository
	changes   changePublisher
	forward   forwardPublisher
	notifiers map[string]Notifier
	cache     unreadCache

	window   Window
	lang     locale.Lang
	strategy retry.Strategy
}

// Deps groups the collaborators of Service. Forward and Notifiers may be nil.
type Deps struct {
	Repo      notificationRepository
	Profiles  profileRepository
	Changes   changePublisher
	Forward   forwardPublisher
	Notifiers map[string]Notifier
	Cache     unreadCache
}

// NewService creates a notification service.
func NewService(d Deps, window Window, lang locale.Lang, strategy retry.Strategy) *Service {
	return &Service{
		repo:      d.Repo,
		profiles:  d.Profiles,
		changes:   d.Changes,
		forward:   d.Forward,
		notifiers: d.Notifiers,
		cache:     d.Cache,
		window:    window,
		lang:      lang,
		strategy:  strategy,
	}
}

// NotifyDelayed creates at most one unread "delayed_client" notification for the client's recipient.
// It reports whether a notification was created.
func (s *Service) NotifyDelayed(ctx context.Context, c model.Client, now time.Time) (bool, error) {
	if !c.Overdue(now) || !s.window.Contains(*c.NextActionDate, now) {
		return false, nil
	}

	recipient := c.Recipient()

	exists, err := s.repo.HasUnread(ctx, recipient, c.ID, model.TypeDelayedClient)
	if err != nil {
		return false, fmt.Errorf("check unread notification: %w", err)
	}

	if exists {
		return false, nil
	}

	n := model.Notification{
		UserID:   recipient,
		Title:    locale.DelayedTitle(s.lang, c.Name),
		Message:  locale.DelayedMessage(s.lang, c.Name, c.NextActionType, *c.NextActionDate, s.assigneeName(ctx, c)),
		Type:     model.TypeDelayedClient,
		ClientID: uuid.NullUUID{UUID: c.ID, Valid: true},
	}

	created, ok, err := s.repo.CreateIfAbsent(ctx, n)
	if err != nil {
		return false, fmt.Errorf("create notification: %w", err)
	}

	if !ok {
		zlog.Logger.Debug().Str("client_id", c.ID.String()).Msg("notification already created concurrently")
		return false, nil
	}

	metrics.RecordNotificationCreated()
	s.afterChange(ctx, realtime.OpInsert, recipient, created.ID)

	if s.forward != nil {
		msg := queue.ForwardMessage{
			NotificationID: created.ID,
			UserID:         recipient,
			Title:          created.Title,
			Message:        created.Message,
		}

		if err := s.forward.Publish(msg, s.strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("id", created.ID.String()).Msg("failed to publish forward message")
		}
	}

	return true, nil
}

func (s *Service) assigneeName(ctx context.Context, c model.Client) string {
	p, err := s.profiles.GetByID(ctx, c.Recipient())
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("client_id", c.ID.String()).Msg("failed to resolve assignee name")
		return c.SalesPerson
	}

	return p.DisplayName()
}

// afterChange drops the recipient's cached unread count and announces the change.
func (s *Service) afterChange(ctx context.Context, op realtime.Op, userID, id uuid.UUID) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to invalidate unread count")
	}

	e := realtime.Event{
		Table:  realtime.TableNotifications,
		Op:     op,
		IDs:    []uuid.UUID{id},
		UserID: userID,
	}

	if err := s.changes.Publish(e); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to publish notification change")
	}
}

// ListForUser returns the newest notifications of userID.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Notification, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	list, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return list, nil
}

// UnreadCount returns the number of unread notifications, served from Redis when cached.
// An invalidation landing between the database read and the cache fill can leave a
// stale count behind; the cache TTL bounds how long it survives.
func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.cache.Get(ctx, userID)
	if err == nil {
		return n, nil
	}

	if !errors.Is(err, cache.ErrMiss) {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get unread count from cache")
	}

	n, err = s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	if err := s.cache.Set(ctx, userID, n); err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to cache unread count")
	}

	return n, nil
}

// MarkRead marks one of the user's notifications as read.
func (s *Service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	s.afterChange(ctx, realtime.OpUpdate, userID, id)

	return nil
}

// Delete removes one of the user's notifications.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	s.afterChange(ctx, realtime.OpDelete, userID, id)

	return nil
}

// OnChange keeps the unread-count cache honest for changes made by other instances.
func (s *Service) OnChange(e realtime.Event) {
	if e.Table != realtime.TableNotifications || e.UserID == uuid.Nil || !e.Remote() {
		return
	}

	if err := s.cache.Invalidate(context.Background(), e.UserID); err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", e.UserID.String()).Msg("failed to invalidate unread count")
	}
}

// Send delivers message to one address over the named channel.
func (s *Service) Send(to, message, channel string) error {
	notifier, ok := s.notifiers[channel]
	if !ok {
		return fmt.Errorf("unknown channel %s", channel)
	}

	if err := notifier.Send(to, message); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	return nil
}

// Recipients returns the channel -> address pairs the user can be reached at.
func (s *Service) Recipients(ctx context.Context, userID uuid.UUID) (map[string]string, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("get recipient profile: %w", err)
	}

	out := make(map[string]string, 2)
	if _, ok := s.notifiers[ChannelEmail]; ok && p.Email != "" {
		out[ChannelEmail] = p.Email
	}

	if _, ok := s.notifiers[ChannelTelegram]; ok && p.Telegram != "" {
		out[ChannelTelegram] = p.Telegram
	}

	return out, nil
}
