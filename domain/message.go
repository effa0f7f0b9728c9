// This file defines Message entries and related rules.
// Messages are immutable and belong to exactly one room.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type MessageType int

const (
	// Normal is a user authored chat message.
	Normal MessageType = iota
	// Meta marks system generated entries such as presence notices.
	// Meta messages never produce user notifications.
	Meta
)

// Message represents an immutable chat entry.
type Message struct {
	ID     uuid.UUID // unique identifier
	ChatID string    // owning room address
	Sender string    // full transport address of the author
	Type   MessageType
	Body   string
	At     time.Time
	// Read marks entries already seen, either because the room was
	// selected or because they arrived as backfilled history.
	Read bool
}

// SenderNick returns the author's display name, the node part of the
// sender address.
func (m Message) SenderNick() string {
	return Node(m.Sender)
}

// Preview returns a single line excerpt of the body, at most max runes,
// suitable for a user notification.
func (m Message) Preview(max int) string {
	body := strings.Join(strings.Fields(m.Body), " ")
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	return string(runes[:max]) + "…"
}
