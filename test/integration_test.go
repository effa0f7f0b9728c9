package test

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"party-chat/domain"
	"party-chat/domain/event"
	"party-chat/infrastructure/transport"
	"party-chat/repositories"
	"party-chat/runtime"
	"party-chat/services"
)

func Test_Scenario(t *testing.T) {
	req := require.New(t)
	cfg, err := LoadConfig()
	req.NoError(err)
	partyNode := cfg.PartyNode

	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	bus := runtime.NewBus(log)
	store := repositories.NewChatRepository(db, log)
	server := transport.NewMemory(log, bus, store, cfg.Identity, cfg.CharacterID)
	session := services.NewController(log, bus, server, store, cfg.CharacterID, cfg.MucDomain)

	var notifications []event.UserNotification
	bus.Subscribe(event.TopicUserNotification, func(e event.Event) {
		notifications = append(notifications, e.(event.UserNotification))
	})

	// 1. A fresh session starts with no rooms and no selection
	session.Initialize()
	t.Cleanup(func() {
		session.Teardown()
		db.Close()
	})
	req.Empty(session.Cells())
	_, active := session.Selected()
	req.False(active)
	req.False(session.IsConnectedToParty())

	// 2. Joining a party surfaces the party room and selects it
	server.JoinParty(partyNode)
	req.True(session.IsConnectedToParty())
	selected, active := session.Selected()
	req.True(active)
	req.Equal(partyNode, selected)

	// 3. Opening a side room with invitees moves the selection there
	session.AddRoom([]string{"alice@chat.example.org", "bob@chat.example.org"})
	req.Len(session.Cells(), 2)
	selected, _ = session.Selected()
	req.NotEqual(partyNode, selected)
	sideRoom := selected

	// 4. Party traffic badges the now backgrounded party room
	server.DeliverMessage(partyNode, "alice@chat.example.org", "where is everyone", false)
	server.DeliverMessage(partyNode, "alice@chat.example.org", "hello??", false)
	partyCell, ok := lo.Find(session.Cells(), func(cell domain.Cell) bool {
		return cell.ID == partyNode
	})
	req.True(ok)
	req.Equal(2, partyCell.Badge)
	req.Len(notifications, 2)
	req.Equal("alice", notifications[0].Sender)

	// 5. Backfilled history never badges and never notifies
	server.DeliverMessage(partyNode, "bob@chat.example.org", "old news", true)
	partyCell, _ = lo.Find(session.Cells(), func(cell domain.Cell) bool {
		return cell.ID == partyNode
	})
	req.Equal(2, partyCell.Badge)
	req.Len(notifications, 2)

	// 6. Selecting the party room reads it and clears the badge
	session.SelectRoom(partyCell)
	partyCell, _ = lo.Find(session.Cells(), func(cell domain.Cell) bool {
		return cell.ID == partyNode
	})
	req.Zero(partyCell.Badge)
	messages, err := store.Messages(partyNode)
	req.NoError(err)
	req.Len(messages, 3)

	// 7. A presence notice lands in the transcript as a meta entry,
	// silently
	server.MemberJoined(partyNode+"/carol", "carol")
	req.Len(notifications, 2)

	// 8. Deleting the side room reselects the head of the remaining
	// list
	sideCell, ok := lo.Find(session.Cells(), func(cell domain.Cell) bool {
		return cell.ID == sideRoom
	})
	req.True(ok)
	session.DeleteRoom(sideCell)
	req.Len(session.Cells(), 1)
	selected, active = session.Selected()
	req.True(active)
	req.Equal(partyNode, selected)

	// 9. Leaving the party drops every cached log and the selection
	server.LeaveParty()
	req.False(session.IsConnectedToParty())
	req.Empty(session.Cells())
	_, active = session.Selected()
	req.False(active)
	messages, err = store.Messages(partyNode)
	req.NoError(err)
	req.Empty(messages)
}
