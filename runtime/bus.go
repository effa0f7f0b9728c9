// Package runtime owns the in-process plumbing of a chat session: the
// typed event bus every component communicates through. It orchestrates
// delivery without containing business logic or domain rules.
package runtime

import (
	"log/slog"
	"sync"

	"party-chat/domain/event"
)

// Handler consumes a single bus event.
type Handler func(e event.Event)

// Subscription identifies one handler registration on a Bus.
type Subscription struct {
	topic string
	id    int
}

type registration struct {
	id      int
	handler Handler
}

// Bus is a publish/subscribe hub scoped to one session.
//
// Delivery runs to completion: Publish enqueues the event and drains the
// queue one event at a time, in arrival order. A publish issued from
// inside a handler is queued behind the event currently being
// dispatched, never nested, so handlers stay effectively single
// threaded and are safe to re-enter without locking of their own.
//
// Bus is safe for concurrent use by multiple goroutines.
type Bus struct {
	mu          sync.Mutex
	log         *slog.Logger
	nextID      int
	handlers    map[string][]registration
	queue       []event.Event
	dispatching bool
}

func NewBus(log *slog.Logger) *Bus {
	return &Bus{log: log, handlers: make(map[string][]registration)}
}

func (b *Bus) Subscribe(topic string, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.handlers[topic] = append(b.handlers[topic], registration{id: b.nextID, handler: handler})
	return Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe removes a registration. Unknown or already removed
// subscriptions are ignored, so calling it twice is safe.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	registrations := b.handlers[sub.topic]
	for i, reg := range registrations {
		if reg.id == sub.id {
			b.handlers[sub.topic] = append(registrations[:i:i], registrations[i+1:]...)
			return
		}
	}
}

// Publish dispatches e to every handler subscribed to its topic.
func (b *Bus) Publish(e event.Event) {
	b.mu.Lock()
	b.queue = append(b.queue, e)
	if b.dispatching {
		// Someone further up the stack is already draining the queue.
		b.mu.Unlock()
		return
	}
	b.dispatching = true
	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]

		registrations := b.handlers[next.Topic()]
		targets := make([]Handler, 0, len(registrations))
		for _, reg := range registrations {
			targets = append(targets, reg.handler)
		}
		b.mu.Unlock()

		if len(targets) == 0 {
			b.log.Debug("No subscriber for topic", "topic", next.Topic())
		}
		for _, handler := range targets {
			handler(next)
		}
		b.mu.Lock()
	}
	b.dispatching = false
	b.mu.Unlock()
}
