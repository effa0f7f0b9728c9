// Package domain contains core concepts of the party chat system.
// This file defines the persisted Room record and its queryable fields.
package domain

import "time"

// Queryable record fields, named after the persisted attributes.
const (
	FieldChatID      = "chatId"
	FieldCharacterID = "characterId"
	FieldPartyID     = "partyId"
)

// Room is a chat room record scoped to a character and, optionally, to
// a party. ChatID is the transport address and the record identity.
// At most one room per (character, party) carries IsParty=true: the
// party-wide room whose address is the party node itself.
type Room struct {
	ChatID      string
	CharacterID string
	PartyID     string
	IsParty     bool
	CreatedAt   time.Time
}

// Field returns the value of a queryable record field, or the empty
// string for an unknown field name.
func (r Room) Field(name string) string {
	switch name {
	case FieldChatID:
		return r.ChatID
	case FieldCharacterID:
		return r.CharacterID
	case FieldPartyID:
		return r.PartyID
	default:
		return ""
	}
}
