// Package transport hosts implementations of the session's transport
// contract.
package transport

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"party-chat/contract"
	"party-chat/domain"
	"party-chat/domain/event"
	"party-chat/errors"
	"party-chat/runtime"
)

// Memory is an in-process loopback transport. It plays the server side
// of the realtime service: inbound traffic lands in the store first and
// is then announced on the bus, exactly the order a live connection
// feeds the session core in.
type Memory struct {
	log         *slog.Logger
	bus         *runtime.Bus
	store       contract.Store
	identity    string
	characterID string
	partyNode   string
}

func NewMemory(log *slog.Logger, bus *runtime.Bus, store contract.Store,
	identity, characterID string) *Memory {
	return &Memory{log: log, bus: bus, store: store, identity: identity, characterID: characterID}
}

func (m *Memory) CreateRoomAndInvite(address string, invitees []string) (contract.RoomHandle, error) {
	if !strings.Contains(address, "@") {
		return contract.RoomHandle{}, errors.ErrInvalidAddress
	}
	room := domain.Room{
		ChatID:      address,
		CharacterID: m.characterID,
		PartyID:     m.partyNode,
	}
	if err := m.store.SaveRoom(room); err != nil {
		return contract.RoomHandle{}, fmt.Errorf("room creation failed: %w", err)
	}
	m.log.Info("Room created", "room", address, "invitees", len(invitees))
	return contract.RoomHandle{ChatID: address}, nil
}

func (m *Memory) Leave(chatID, reason string, done func(error)) {
	m.log.Debug("Leaving room", "room", chatID, "reason", reason)
	if done != nil {
		done(nil)
	}
}

func (m *Memory) CurrentPartyNode() string {
	return m.partyNode
}

func (m *Memory) Identity() string {
	return m.identity
}

// JoinParty connects the session to a party node, records the party
// wide room and announces the join.
func (m *Memory) JoinParty(node string) {
	m.partyNode = node
	if _, ok, _ := m.store.FindFirstBy(domain.FieldChatID, node); !ok {
		room := domain.Room{
			ChatID:      node,
			CharacterID: m.characterID,
			PartyID:     node,
			IsParty:     true,
		}
		if err := m.store.SaveRoom(room); err != nil {
			m.log.Warn("Party room record failed", "room", node, "error", err)
		}
	}
	m.bus.Publish(event.PartyJoined{Node: node})
}

// LeaveParty disconnects from the current party node and announces it.
func (m *Memory) LeaveParty() {
	node := m.partyNode
	m.partyNode = ""
	m.bus.Publish(event.PartyLeft{Node: node})
}

// DeliverMessage simulates an inbound room message. An unknown room is
// recorded on the fly, the way the first message of a brand new room
// arrives before any local record exists.
func (m *Memory) DeliverMessage(chatID, sender, body string, delay bool) {
	room, ok, err := m.store.FindFirstBy(domain.FieldChatID, chatID)
	if err != nil {
		m.log.Warn("Room lookup failed", "room", chatID, "error", err)
		return
	}
	if !ok {
		room = domain.Room{
			ChatID:      chatID,
			CharacterID: m.characterID,
			PartyID:     m.partyNode,
		}
		if err := m.store.SaveRoom(room); err != nil {
			m.log.Warn("Room record failed", "room", chatID, "error", err)
			return
		}
	}
	message := domain.Message{
		ID:     uuid.New(),
		ChatID: chatID,
		Sender: sender,
		Type:   domain.Normal,
		Body:   body,
		At:     time.Now().UTC(),
		// Backfilled history lands already read, it never badges.
		Read: delay,
	}
	if err := m.store.AppendMessage(message); err != nil {
		m.log.Warn("Message append failed", "room", chatID, "error", err)
		return
	}
	m.bus.Publish(event.MessageDelivered{Room: room, Message: message, Delay: delay})
}

// MemberJoined announces an occupant entering a room.
func (m *Memory) MemberJoined(origin, nick string) {
	m.bus.Publish(event.Presence{Nick: nick, Origin: origin, Kind: event.Joined})
}

// MemberLeft announces an occupant leaving a room.
func (m *Memory) MemberLeft(origin, nick string) {
	m.bus.Publish(event.Presence{Nick: nick, Origin: origin, Kind: event.Left})
}
