package services

import (
	"fmt"
	"log/slog"
	"time"

	"party-chat/contract"
	"party-chat/domain"
	"party-chat/domain/event"
	"party-chat/runtime"
)

const previewLength = 80

// sessionView is the slice of controller state the router needs to make
// delivery decisions.
type sessionView interface {
	Selected() (string, bool)
	Foreground() bool
	Cells() []domain.Cell
	Reload()
}

// Router classifies inbound transport events and applies the delivery
// policy: live messages refresh the active transcript or badge a
// background room and notify the user; backfill only refreshes the
// transcript; self-originated presence is dropped outright.
type Router struct {
	log      *slog.Logger
	bus      *runtime.Bus
	store    contract.Store
	identity string
	badges   *BadgeTracker
	session  sessionView
}

func NewRouter(log *slog.Logger, bus *runtime.Bus, store contract.Store,
	identity string, badges *BadgeTracker, session sessionView) *Router {
	return &Router{log: log, bus: bus, store: store, identity: identity, badges: badges, session: session}
}

// Deliver routes one inbound message to the correct room.
func (r *Router) Deliver(room domain.Room, message domain.Message, delay, hideTitle bool) {
	// The event itself may have created the room, reload first so the
	// list already contains it.
	r.session.Reload()

	selected, active := r.session.Selected()
	if active && selected == room.ChatID {
		// The room for this message is the active room: the refreshed
		// transcript puts the entry on screen, so the room stays read.
		if err := r.store.MarkRead(room.ChatID); err != nil {
			r.log.Warn("Read flag update failed", "room", room.ChatID, "error", err)
		}
		r.bus.Publish(event.TranscriptInvalidated{ChatID: room.ChatID})
	} else if !delay {
		// The room is in the background. Badge the icon.
		r.badges.Update(room, r.session.Cells())
	}

	if r.session.Foreground() || delay || message.Type == domain.Meta {
		return
	}
	notification := event.UserNotification{Preview: message.Preview(previewLength)}
	if !hideTitle {
		notification.Sender = message.SenderNick()
	}
	r.bus.Publish(notification)
}

// HandlePresence routes an occupant join/leave through the message path
// as a meta entry with a suppressed title. Echoes of our own presence
// are dropped before any side effect.
func (r *Router) HandlePresence(presence event.Presence) {
	if presence.Nick == domain.Node(r.identity) {
		return
	}
	room, ok, err := r.store.FindFirstBy(domain.FieldChatID, domain.Bare(presence.Origin))
	if err != nil {
		r.log.Warn("Room lookup failed", "origin", presence.Origin, "error", err)
	}
	if !ok {
		r.log.Debug("Presence from unlisted room", "origin", presence.Origin)
	}
	r.Deliver(room, presenceMessage(presence), false, true)
}

func presenceMessage(presence event.Presence) domain.Message {
	verb := "joined"
	if presence.Kind == event.Left {
		verb = "left"
	}
	return domain.Message{
		ChatID: domain.Bare(presence.Origin),
		Sender: presence.Nick,
		Type:   domain.Meta,
		Body:   fmt.Sprintf("%s %s the room", presence.Nick, verb),
		At:     time.Now().UTC(),
	}
}
