package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/estate-crm/internal/rabbitmq/queue"
)

// Forwarder sends created notifications on to email and Telegram.
type Forwarder struct {
	queue   forwardConsumer
	handler messageHandler
}

func NewForwarder(q forwardConsumer, h messageHandler) *Forwarder {
	return &Forwarder{
		queue:   q,
		handler: h,
	}
}

func (f *Forwarder) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.ForwardMessage, workerCount*10)

	go func() {
		if err := f.queue.Consume(msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume forward messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("forwarder-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("forwarder-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("forwarder-%d channel closed, shutting down", id)
						return
					}

					f.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("forwarder stopped")
}
