// Package worker runs the background loops of the CRM: the delayed-action
// scanner, the change relay and the notification forwarder.
package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/estate-crm/internal/model"
	"github.com/aliskhannn/estate-crm/internal/rabbitmq/queue"
	"github.com/aliskhannn/estate-crm/internal/realtime"
)

//go:generate mockgen -source=worker.go -destination=../mocks/worker/mock.go -package=mocks

type overdueLister interface {
	ListOverdue(ctx context.Context, now time.Time) ([]model.Client, error)
}

type delayedNotifier interface {
	NotifyDelayed(ctx context.Context, c model.Client, now time.Time) (bool, error)
}

type alertPublisher interface {
	Publish(e realtime.Event) error
}

type changeConsumer interface {
	Consume(out chan<- realtime.Event) error
}

type eventSink interface {
	Publish(e realtime.Event)
}

type forwardConsumer interface {
	Consume(out chan<- queue.ForwardMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.ForwardMessage, strategy retry.Strategy)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
