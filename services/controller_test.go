package services

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"party-chat/contract"
	"party-chat/domain"
	"party-chat/domain/event"
	"party-chat/mocks"
	"party-chat/repositories"
	"party-chat/runtime"
)

const (
	testIdentity  = "hero@chat.example.org/home"
	testCharacter = "char-1"
	testMucDomain = "muc.example.org"
	testParty     = "party@muc.example.org"
)

type sessionFixture struct {
	store      *repositories.ChatRepository
	bus        *runtime.Bus
	transport  *mocks.MockTransport
	controller *Controller
	partyNode  string
}

func newSessionFixture(t *testing.T, partyNode string) *sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &sessionFixture{
		store:     openTestStore(t),
		bus:       runtime.NewBus(slog.Default()),
		transport: mocks.NewMockTransport(ctrl),
		partyNode: partyNode,
	}
	f.transport.EXPECT().Identity().Return(testIdentity).AnyTimes()
	f.transport.EXPECT().CurrentPartyNode().DoAndReturn(func() string { return f.partyNode }).AnyTimes()
	f.controller = NewController(slog.Default(), f.bus, f.transport, f.store, testCharacter, testMucDomain)
	return f
}

func (f *sessionFixture) saveRoom(t *testing.T, chatID string, isParty bool) {
	t.Helper()
	require.NoError(t, f.store.SaveRoom(domain.Room{
		ChatID:      chatID,
		CharacterID: testCharacter,
		PartyID:     f.partyNode,
		IsParty:     isParty,
	}))
}

func TestController_Initialize(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, testParty)
	f.saveRoom(t, "one@muc.example.org", false)
	f.saveRoom(t, testParty, true)
	// A stale cached log from the previous session
	req.NoError(f.store.AppendMessage(domain.Message{ChatID: "one@muc.example.org", Sender: "alice@chat.example.org", Body: "old"}))

	f.controller.Initialize()

	// The head of the list becomes the selection
	selected, ok := f.controller.Selected()
	req.True(ok)
	req.Equal("one@muc.example.org", selected)
	req.True(f.controller.IsConnectedToParty())

	// Stale logs were purged
	messages, err := f.store.Messages("one@muc.example.org")
	req.NoError(err)
	req.Empty(messages)
}

func TestController_Initialize_EmptyList(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, "")

	f.controller.Initialize()

	_, ok := f.controller.Selected()
	req.False(ok)
	req.Empty(f.controller.Cells())
	req.False(f.controller.IsConnectedToParty())
}

func TestController_AddRoom_NoInvitees(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, testParty)
	f.controller.Initialize()

	// No transport call, no state change
	f.transport.EXPECT().CreateRoomAndInvite(gomock.Any(), gomock.Any()).Times(0)

	f.controller.AddRoom(nil)

	_, ok := f.controller.Selected()
	req.False(ok)
	req.Empty(f.controller.Cells())
}

func TestController_AddRoom_SelectsCreatedRoom(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, testParty)
	f.controller.Initialize()

	invitees := []string{"alice@chat.example.org"}
	f.transport.EXPECT().
		CreateRoomAndInvite(gomock.Any(), invitees).
		DoAndReturn(func(address string, _ []string) (contract.RoomHandle, error) {
			// The room name is a short token under the group domain
			req.True(strings.HasSuffix(address, "@"+testMucDomain))
			req.Len(domain.Node(address), 6)
			req.NoError(f.store.SaveRoom(domain.Room{ChatID: address, CharacterID: testCharacter, PartyID: f.partyNode}))
			return contract.RoomHandle{ChatID: address}, nil
		}).
		Times(1)

	f.controller.AddRoom(invitees)

	req.Len(f.controller.Cells(), 1)
	selected, ok := f.controller.Selected()
	req.True(ok)
	req.Equal(f.controller.Cells()[0].ID, selected)
}

func TestController_AddRoom_CreatedRoomNotListedYet(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, testParty)
	f.saveRoom(t, "existing@muc.example.org", false)
	f.controller.Initialize()

	// The transport answers but the record is not visible locally yet
	f.transport.EXPECT().
		CreateRoomAndInvite(gomock.Any(), gomock.Any()).
		Return(contract.RoomHandle{ChatID: "pending@muc.example.org"}, nil).
		Times(1)

	f.controller.AddRoom([]string{"alice@chat.example.org"})

	// Selection is left unchanged, no error raised
	selected, ok := f.controller.Selected()
	req.True(ok)
	req.Equal("existing@muc.example.org", selected)
}

func TestController_DeleteRoom_LastRemainingCell(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, testParty)
	f.saveRoom(t, "only@muc.example.org", false)
	f.controller.Initialize()

	f.transport.EXPECT().Leave("only@muc.example.org", gomock.Any(), gomock.Any()).Times(1)

	f.controller.DeleteRoom(f.controller.Cells()[0])

	// The list is empty and the selection moved to no active room
	_, ok := f.controller.Selected()
	req.False(ok)
	req.Empty(f.controller.Cells())
}

func TestController_DeleteRoom_ReselectsHead(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, testParty)
	f.saveRoom(t, "first@muc.example.org", false)
	f.saveRoom(t, "second@muc.example.org", false)
	f.controller.Initialize()

	f.transport.EXPECT().Leave("first@muc.example.org", gomock.Any(), gomock.Any()).Times(1)

	f.controller.DeleteRoom(f.controller.Cells()[0])

	selected, ok := f.controller.Selected()
	req.True(ok)
	req.Equal("second@muc.example.org", selected)
}

func TestController_SelectRoom_ReadsNow(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, testParty)
	f.saveRoom(t, "first@muc.example.org", false)
	f.saveRoom(t, "second@muc.example.org", false)
	f.controller.Initialize()

	// Two unread messages land in the background room
	for _, body := range []string{"one", "two"} {
		req.NoError(f.store.AppendMessage(domain.Message{ChatID: "second@muc.example.org", Sender: "alice@chat.example.org", Body: body}))
	}
	f.controller.Reload()
	req.Equal(2, f.controller.Cells()[1].Badge)

	// Selecting recomputes the badge as read now, not a blind zero
	f.controller.SelectRoom(f.controller.Cells()[1])
	req.Zero(f.controller.Cells()[1].Badge)

	selected, ok := f.controller.Selected()
	req.True(ok)
	req.Equal("second@muc.example.org", selected)
}

func TestController_OnPartyLeft_PurgesRooms(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, testParty)
	f.saveRoom(t, testParty, true)
	f.saveRoom(t, "side@muc.example.org", false)
	f.controller.Initialize()
	req.NoError(f.store.AppendMessage(domain.Message{ChatID: "side@muc.example.org", Sender: "alice@chat.example.org", Body: "hello"}))

	// The transport already dropped the party node when the event fires
	f.partyNode = ""
	f.bus.Publish(event.PartyLeft{Node: testParty})

	// The party scoped directory is now empty and logs are gone
	req.Empty(f.controller.Cells())
	req.False(f.controller.IsConnectedToParty())
	_, ok := f.controller.Selected()
	req.False(ok)

	messages, err := f.store.Messages("side@muc.example.org")
	req.NoError(err)
	req.Empty(messages)
}

func TestController_OnPartyJoined_SelectsHead(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, "")
	f.controller.Initialize()
	req.False(f.controller.IsConnectedToParty())

	f.partyNode = testParty
	f.saveRoom(t, testParty, true)
	f.bus.Publish(event.PartyJoined{Node: testParty})

	req.True(f.controller.IsConnectedToParty())
	selected, ok := f.controller.Selected()
	req.True(ok)
	req.Equal(testParty, selected)
}

func TestController_Teardown_Idempotent(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, testParty)

	// Safe before Initialize
	f.controller.Teardown()

	f.saveRoom(t, testParty, true)
	f.controller.Initialize()
	f.controller.Teardown()
	f.controller.Teardown()

	// After teardown bus events no longer reach the controller
	f.partyNode = ""
	f.bus.Publish(event.PartyLeft{Node: testParty})
	req.True(f.controller.IsConnectedToParty())
	req.Len(f.controller.Cells(), 1)
}
