// Package services implements the chat session core: room directory,
// badge tracking, message routing and the session controller composing
// them.
package services

import (
	"log/slog"
	"sort"

	"github.com/samber/lo"

	"party-chat/contract"
	"party-chat/domain"
)

const leaveReason = "left room"

// Directory maintains the order-stable list of rooms visible to a
// character inside the current party context. The list is always a pure
// function of the store and the party node: it is recomputed wholesale,
// never patched, so repeated reloads with no intervening mutation yield
// identical output.
type Directory struct {
	log   *slog.Logger
	store contract.Store
}

func NewDirectory(log *slog.Logger, store contract.Store) *Directory {
	return &Directory{log: log, store: store}
}

// Reload queries the store for the character's rooms in the given party
// context: the party-wide room itself plus every room scoped under the
// party. The party room, when present, always sorts last; all other
// rooms keep their insertion order.
func (d *Directory) Reload(characterID, partyNode string) []domain.Room {
	rooms, err := d.store.FindByPredicates(
		contract.KeyValuePredicate{Field: domain.FieldCharacterID, Value: characterID},
		contract.OrPredicate{Predicates: []contract.RoomPredicate{
			contract.KeyValuePredicate{Field: domain.FieldChatID, Value: partyNode},
			contract.KeyValuePredicate{Field: domain.FieldPartyID, Value: partyNode},
		}},
	)
	if err != nil {
		d.log.Warn("Room query failed, keeping an empty list", "error", err)
		return nil
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		return !rooms[i].IsParty && rooms[j].IsParty
	})
	return rooms
}

// Cells projects rooms into list cells with fresh unread counts.
func (d *Directory) Cells(rooms []domain.Room) []domain.Cell {
	return lo.Map(rooms, func(room domain.Room, _ int) domain.Cell {
		unread, err := d.store.UnreadCount(room.ChatID)
		if err != nil {
			d.log.Debug("Unread count unavailable", "room", room.ChatID, "error", err)
		}
		return domain.Cell{
			ID:    room.ChatID,
			Label: domain.Node(room.ChatID),
			Badge: unread,
		}
	})
}

// PurgeAll clears the message log of every room the character owns.
// Logs are an ephemeral local cache, history stays server side.
func (d *Directory) PurgeAll(characterID string) {
	rooms, err := d.store.FindBy(domain.FieldCharacterID, characterID)
	if err != nil {
		d.log.Warn("Purge skipped, room query failed", "error", err)
		return
	}
	for _, room := range rooms {
		if err := d.store.Purge(room.ChatID); err != nil {
			d.log.Warn("Purge failed", "room", room.ChatID, "error", err)
		}
	}
}

// DeleteRoom leaves the room on the transport and drops the local
// record and its log. A missing record is benign: the transport side
// may simply be ahead of the local store.
func (d *Directory) DeleteRoom(cell domain.Cell, transport contract.Transport) {
	transport.Leave(cell.ID, leaveReason, func(err error) {
		if err != nil {
			d.log.Warn("Leave rejected by transport", "room", cell.ID, "error", err)
		}
	})

	room, ok, err := d.store.FindFirstBy(domain.FieldChatID, cell.ID)
	if err != nil {
		d.log.Warn("Room lookup failed", "room", cell.ID, "error", err)
		return
	}
	if !ok {
		d.log.Debug("No local record for deleted room", "room", cell.ID)
		return
	}
	if err := d.store.Purge(room.ChatID); err != nil {
		d.log.Warn("Purge failed", "room", room.ChatID, "error", err)
	}
	if err := d.store.DeleteRoom(room.ChatID); err != nil {
		d.log.Warn("Record deletion failed", "room", room.ChatID, "error", err)
	}
}
