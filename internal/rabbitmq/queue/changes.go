package queue

import (
	"encoding/json"
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/estate-crm/internal/realtime"
)

const changesRoutingKey = "change"

// ChangeQueue carries realtime change events between service instances.
// Every instance binds its own queue to a fanout exchange, so each one sees every event.
type ChangeQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
	instance  string
	strategy  retry.Strategy
}

// NewChangeQueue declares the fanout exchange and this instance's queue.
// The queue expires a minute after its consumer goes away.
func NewChangeQueue(ch *rabbitmq.Channel, exchangeName, instance string, strategy retry.Strategy) (*ChangeQueue, error) {
	exchange := rabbitmq.NewExchange(exchangeName, "fanout")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	args := map[string]interface{}{
		"x-expires": int32(60000),
	}

	q, err := qm.DeclareQueue(exchangeName+"."+instance, rabbitmq.QueueConfig{
		Durable: false,
		Args:    args,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare change queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, changesRoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the change queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(q.Name))

	return &ChangeQueue{Publisher: pub, Consumer: cons, instance: instance, strategy: strategy}, nil
}

// Publish sends a change event to every instance, stamped with this instance as origin.
func (q *ChangeQueue) Publish(e realtime.Event) error {
	e.Origin = q.instance

	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, changesRoutingKey, "application/json", q.strategy)
}

// Consume decodes incoming events into out until the consumer stops.
// Events this instance published are dropped; they were delivered locally already.
func (q *ChangeQueue) Consume(out chan<- realtime.Event) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var e realtime.Event
			if err := json.Unmarshal(m, &e); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal change event")
				continue
			}

			if e.Origin == q.instance {
				continue
			}

			out <- e
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, q.strategy)
}
