package event

import (
	"party-chat/domain"
)

// Bus topics consumed by the session core.
const (
	TopicMessageDelivered    = "message.delivered"
	TopicRoomListChanged     = "room.listChanged"
	TopicMemberJoined        = "member.joined"
	TopicMemberLeft          = "member.left"
	TopicPartyJoined         = "party.joined"
	TopicPartyLeft           = "party.left"
	TopicPartyMembersChanged = "party.members.changed"
)

// Bus topics produced by the session core.
const (
	TopicBadgeChanged          = "badge.changed"
	TopicUserNotification      = "user.notification"
	TopicTranscriptInvalidated = "transcript.invalidated"
	TopicViewRefreshed         = "view.refreshed"
)

// Event is the tagged union carried by the bus. Concrete types below
// cover messages, presence and the view facing signals; handlers switch
// on the concrete type after matching the topic.
type Event interface {
	Topic() string
}

// MessageDelivered announces an inbound room message.
type MessageDelivered struct {
	Room    domain.Room
	Message domain.Message
	// Delay marks backfill delivery (history replay). Backfill only
	// refreshes the transcript, it never badges or notifies.
	Delay     bool
	HideTitle bool
}

func (MessageDelivered) Topic() string { return TopicMessageDelivered }

type PresenceKind int

const (
	Joined PresenceKind = iota
	Left
)

// Presence is an ephemeral occupant join/leave notice. It is never
// persisted; it only drives routing side effects.
type Presence struct {
	Nick   string // occupant display name
	Origin string // address of the room the presence came from
	Kind   PresenceKind
}

func (p Presence) Topic() string {
	if p.Kind == Left {
		return TopicMemberLeft
	}
	return TopicMemberJoined
}

// RoomListChanged signals that the set of visible rooms changed on the
// transport side and the directory should resync.
type RoomListChanged struct{}

func (RoomListChanged) Topic() string { return TopicRoomListChanged }

type PartyJoined struct {
	Node string
}

func (PartyJoined) Topic() string { return TopicPartyJoined }

type PartyLeft struct {
	Node string
}

func (PartyLeft) Topic() string { return TopicPartyLeft }

type PartyMembersChanged struct{}

func (PartyMembersChanged) Topic() string { return TopicPartyMembersChanged }

// BadgeChanged reports a fresh unread count for one cell.
type BadgeChanged struct {
	CellID string
	Count  int
}

func (BadgeChanged) Topic() string { return TopicBadgeChanged }

// UserNotification is a user facing toast. Sender is empty when the
// title is suppressed.
type UserNotification struct {
	Preview string
	Sender  string
}

func (UserNotification) Topic() string { return TopicUserNotification }

// TranscriptInvalidated tells the detail view that the active room's
// cached transcript is stale.
type TranscriptInvalidated struct {
	ChatID string
}

func (TranscriptInvalidated) Topic() string { return TopicTranscriptInvalidated }

// ViewRefreshed carries the fresh list snapshot after a state changing
// operation. Selected is empty when no room is active.
type ViewRefreshed struct {
	Cells    []domain.Cell
	Selected string
}

func (ViewRefreshed) Topic() string { return TopicViewRefreshed }
