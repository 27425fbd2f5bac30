package realtime

// Publisher forwards events to other service instances.
type Publisher interface {
	Publish(e Event) error
}

// Broadcaster delivers an event to this process's hub first and then to
// the other instances. Local subscribers never wait on the broker.
type Broadcaster struct {
	hub    *Hub
	remote Publisher
}

// NewBroadcaster fans events to hub and remote. A nil remote keeps events in-process.
func NewBroadcaster(hub *Hub, remote Publisher) *Broadcaster {
	return &Broadcaster{hub: hub, remote: remote}
}

func (b *Broadcaster) Publish(e Event) error {
	e.Origin = ""
	b.hub.Publish(e)

	if b.remote == nil {
		return nil
	}

	return b.remote.Publish(e)
}
