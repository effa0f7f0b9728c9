package runtime

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"party-chat/domain/event"
)

func TestBus_Publish_InArrivalOrder(t *testing.T) {
	req := require.New(t)
	bus := NewBus(slog.Default())

	var seen []string
	bus.Subscribe(event.TopicPartyJoined, func(e event.Event) {
		joined := e.(event.PartyJoined)
		seen = append(seen, joined.Node)
	})

	bus.Publish(event.PartyJoined{Node: "first"})
	bus.Publish(event.PartyJoined{Node: "second"})

	req.Equal([]string{"first", "second"}, seen)
}

func TestBus_Publish_RunToCompletion(t *testing.T) {
	req := require.New(t)
	bus := NewBus(slog.Default())

	var seen []string
	bus.Subscribe(event.TopicPartyJoined, func(e event.Event) {
		seen = append(seen, "joined")
		// A publish from inside a handler queues behind the event
		// being dispatched instead of nesting.
		bus.Publish(event.RoomListChanged{})
		seen = append(seen, "joined-done")
	})
	bus.Subscribe(event.TopicRoomListChanged, func(event.Event) {
		seen = append(seen, "listChanged")
	})

	bus.Publish(event.PartyJoined{Node: "party@muc.example.org"})

	req.Equal([]string{"joined", "joined-done", "listChanged"}, seen)
}

func TestBus_Publish_MultipleSubscribers(t *testing.T) {
	req := require.New(t)
	bus := NewBus(slog.Default())

	calls := 0
	bus.Subscribe(event.TopicPartyLeft, func(event.Event) { calls++ })
	bus.Subscribe(event.TopicPartyLeft, func(event.Event) { calls++ })
	// A foreign topic never fires
	bus.Subscribe(event.TopicPartyJoined, func(event.Event) { calls += 100 })

	bus.Publish(event.PartyLeft{})

	req.Equal(2, calls)
}

func TestBus_Unsubscribe_Idempotent(t *testing.T) {
	req := require.New(t)
	bus := NewBus(slog.Default())

	calls := 0
	sub := bus.Subscribe(event.TopicPartyJoined, func(event.Event) { calls++ })

	bus.Publish(event.PartyJoined{})
	bus.Unsubscribe(sub)
	bus.Unsubscribe(sub)
	bus.Publish(event.PartyJoined{})

	req.Equal(1, calls)
}

func TestBus_Publish_WithoutSubscribers(t *testing.T) {
	bus := NewBus(slog.Default())

	// Nothing listens, nothing panics
	bus.Publish(event.RoomListChanged{})
}
