package forward

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/estate-crm/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/forward/mock.go -package=mocks
type notificationService interface {
	Recipients(ctx context.Context, userID uuid.UUID) (map[string]string, error)
	Send(to, message, channel string) error
}

// Handler delivers one forwarded notification over every channel the recipient has.
type Handler struct {
	service notificationService
}

func NewHandler(svc notificationService) *Handler {
	return &Handler{
		service: svc,
	}
}

func (h *Handler) HandleMessage(ctx context.Context, msg queue.ForwardMessage, strategy retry.Strategy) {
	recipients, err := h.service.Recipients(ctx, msg.UserID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.NotificationID.String()).Msg("failed to resolve recipients")
		return
	}

	if len(recipients) == 0 {
		zlog.Logger.Debug().Str("id", msg.NotificationID.String()).Msg("no forwarding channel for recipient")
		return
	}

	text := msg.Title + "\n\n" + msg.Message

	for channel, to := range recipients {
		err := retry.Do(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return h.service.Send(to, text, channel)
			}
		}, strategy)

		if err != nil {
			zlog.Logger.Error().Err(err).
				Str("id", msg.NotificationID.String()).
				Str("channel", channel).
				Msg("failed to forward notification")
			continue
		}

		zlog.Logger.Info().Str("id", msg.NotificationID.String()).Str("channel", channel).Msg("notification forwarded")
	}
}
