package queue

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	forwardQueueName = "crm-forward-queue"
	forwardRetryName = "crm-forward-retry"
	forwardDLQName   = "crm-forward-dlq"
	forwardRouting   = "forward"
)

// ForwardMessage asks for an in-app notification to also be sent over email / Telegram.
type ForwardMessage struct {
	NotificationID uuid.UUID `json:"notification_id"`
	UserID         uuid.UUID `json:"user_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
}

// ForwardQueue is the work queue for notification forwarding.
type ForwardQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewForwardQueue declares the direct exchange, the main queue, a delayed retry queue and a DLQ.
func NewForwardQueue(ch *rabbitmq.Channel, exchangeName string) (*ForwardQueue, error) {
	exchange := rabbitmq.NewExchange(exchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(forwardDLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": forwardQueueName,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(forwardRetryName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": forwardDLQName,
	}

	mainQ, err := qm.DeclareQueue(forwardQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, forwardRouting, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &ForwardQueue{Publisher: pub, Consumer: cons}, nil
}

// Publish enqueues a forwarding request.
func (q *ForwardQueue) Publish(msg ForwardMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, forwardRouting, "application/json", strategy)
}

// Consume decodes forwarding requests into out until the consumer stops.
func (q *ForwardQueue) Consume(out chan<- ForwardMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var msg ForwardMessage
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
				continue
			}

			out <- msg
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
