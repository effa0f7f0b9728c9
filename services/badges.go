package services

import (
	"log/slog"

	"github.com/samber/lo"

	"party-chat/contract"
	"party-chat/domain"
	"party-chat/domain/event"
	"party-chat/runtime"
)

// BadgeTracker recomputes unread counters from the store and pushes
// them into the current cell list. Counts are always recomputed, never
// incremented blindly, so a badge stays correct even when messages land
// between two updates.
type BadgeTracker struct {
	log   *slog.Logger
	store contract.Store
	bus   *runtime.Bus
}

func NewBadgeTracker(log *slog.Logger, store contract.Store, bus *runtime.Bus) *BadgeTracker {
	return &BadgeTracker{log: log, store: store, bus: bus}
}

// Update recomputes the unread count of room and assigns it to the
// matching cell in cells. A room that was concurrently removed from the
// list is a no-op.
func (b *BadgeTracker) Update(room domain.Room, cells []domain.Cell) {
	unread, err := b.store.UnreadCount(room.ChatID)
	if err != nil {
		b.log.Debug("Unread count unavailable", "room", room.ChatID, "error", err)
		return
	}
	_, index, ok := lo.FindIndexOf(cells, func(cell domain.Cell) bool {
		return cell.ID == room.ChatID
	})
	if !ok {
		return
	}
	cells[index].Badge = unread
	b.bus.Publish(event.BadgeChanged{CellID: room.ChatID, Count: unread})
}
