//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"party-chat/domain"
)

// RoomHandle identifies a room created on the transport side.
type RoomHandle struct {
	ChatID string
}

// Transport is the realtime messaging collaborator. Calls are fire and
// forget: the core never blocks on their outcome and never retries; a
// late or missing result leaves the locally optimistic state final.
type Transport interface {
	CreateRoomAndInvite(address string, invitees []string) (RoomHandle, error)
	Leave(chatID, reason string, done func(error))
	// CurrentPartyNode returns the address of the joined party, or the
	// empty string when not connected to one.
	CurrentPartyNode() string
	// Identity returns the current user's own transport address.
	Identity() string
}

// RoomPredicate filters room records in Store queries.
type RoomPredicate interface {
	Matches(room domain.Room) bool
}

type KeyValuePredicate struct {
	Field string
	Value string
}

func (p KeyValuePredicate) Matches(room domain.Room) bool {
	return room.Field(p.Field) == p.Value
}

// OrPredicate matches when any of its children matches.
type OrPredicate struct {
	Predicates []RoomPredicate
}

func (p OrPredicate) Matches(room domain.Room) bool {
	for _, child := range p.Predicates {
		if child.Matches(room) {
			return true
		}
	}
	return false
}

// Store is the persisted record store collaborator. Room records and
// their message logs live behind the same interface. Queries return
// records in stable insertion order; predicates compose as a
// conjunction.
type Store interface {
	SaveRoom(room domain.Room) error
	DeleteRoom(chatID string) error
	FindBy(field, value string) ([]domain.Room, error)
	FindFirstBy(field, value string) (domain.Room, bool, error)
	FindByPredicates(predicates ...RoomPredicate) ([]domain.Room, error)

	// AppendMessage preserves transport arrival order as insertion
	// order within a room.
	AppendMessage(message domain.Message) error
	Messages(chatID string) ([]domain.Message, error)
	UnreadCount(chatID string) (int, error)
	// MarkRead flags every entry currently in the room's log as read.
	MarkRead(chatID string) error
	// Purge clears a room's message log but keeps the record itself.
	Purge(chatID string) error
}
