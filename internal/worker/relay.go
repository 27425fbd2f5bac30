package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/estate-crm/internal/realtime"
)

// Relay feeds change events from the broker into the in-process hub.
type Relay struct {
	queue changeConsumer
	hub   eventSink
}

func NewRelay(q changeConsumer, hub eventSink) *Relay {
	return &Relay{queue: q, hub: hub}
}

// Run consumes with workerCount goroutines until ctx is done.
func (r *Relay) Run(ctx context.Context, workerCount int) {
	var wg sync.WaitGroup
	events := make(chan realtime.Event, workerCount*10)

	go func() {
		if err := r.queue.Consume(events); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume change events")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Debug().Int("worker", id).Msg("relay worker shutting down")
					return
				case e, ok := <-events:
					if !ok {
						return
					}

					r.hub.Publish(e)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Info().Msg("relay stopped")
}
