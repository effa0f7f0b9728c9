package services

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"party-chat/contract"
	"party-chat/domain"
	"party-chat/domain/chat"
	"party-chat/domain/event"
	"party-chat/runtime"
)

// Controller owns one chat session: the room list for the active
// character, the active-room selection and the subscriptions wiring the
// store, the transport and the event bus together.
//
// The selection is a two state machine, no active room or exactly one,
// and always references a room present in the current list. All state
// transitions happen inside bus handlers or explicit operations; the
// list is recomputed from the store on every change, which keeps every
// handler idempotent.
type Controller struct {
	log       *slog.Logger
	bus       *runtime.Bus
	transport contract.Transport
	store     contract.Store

	directory *Directory
	badges    *BadgeTracker
	router    *Router

	characterID string
	mucDomain   string

	rooms      []domain.Room
	cells      []domain.Cell
	selected   string // empty when no room is active
	connected  bool
	foreground bool

	subs []runtime.Subscription
}

func NewController(log *slog.Logger, bus *runtime.Bus, transport contract.Transport,
	store contract.Store, characterID, mucDomain string) *Controller {
	c := &Controller{
		log:         log,
		bus:         bus,
		transport:   transport,
		store:       store,
		characterID: characterID,
		mucDomain:   mucDomain,
	}
	c.directory = NewDirectory(log, store)
	c.badges = NewBadgeTracker(log, store, bus)
	c.router = NewRouter(log, bus, store, transport.Identity(), c.badges, c)
	return c
}

// Initialize purges stale local logs, loads the room list, selects its
// head and subscribes to the session topics.
func (c *Controller) Initialize() {
	c.directory.PurgeAll(c.characterID)
	c.Reload()
	c.selectHead()
	c.checkForParty()
	c.subscribe()
}

// Teardown drops every bus subscription. Safe to call repeatedly or
// before Initialize.
func (c *Controller) Teardown() {
	for _, sub := range c.subs {
		c.bus.Unsubscribe(sub)
	}
	c.subs = nil
}

// AddRoom opens a fresh room named by a short random token under the
// group domain and invites the given members. An empty invitee list is
// a silent no-op: no transport call, no state change.
func (c *Controller) AddRoom(invitees []string) {
	command := chat.CreateRoomCommand{Invitees: invitees}
	if err := command.Validate(); err != nil {
		c.log.Debug("Ignoring room creation without invitees")
		return
	}

	address := roomToken() + "@" + c.mucDomain
	handle, err := c.transport.CreateRoomAndInvite(address, invitees)
	if err != nil {
		// Fire and forget: the local list converges on a later reload.
		c.log.Warn("Room creation rejected by transport", "address", address, "error", err)
	}

	c.Reload()
	cell, ok := lo.Find(c.cells, func(cell domain.Cell) bool {
		return cell.ID == handle.ChatID
	})
	if !ok {
		// Not visible in the refreshed list yet, keep the current
		// selection.
		c.log.Debug("Created room not listed yet", "room", handle.ChatID)
		return
	}
	c.SelectRoom(cell)
}

// DeleteRoom leaves the room and reselects the head of the remaining
// list, or clears the selection when the list is now empty.
func (c *Controller) DeleteRoom(cell domain.Cell) {
	c.directory.DeleteRoom(cell, c.transport)
	c.Reload()
	c.selectHead()
}

// SelectRoom makes cell the active room. The room is read now: every
// current entry is flagged read and the badge is recomputed rather
// than zeroed, so anything arriving mid-selection still counts.
func (c *Controller) SelectRoom(cell domain.Cell) {
	c.selected = cell.ID
	if err := c.store.MarkRead(cell.ID); err != nil {
		c.log.Warn("Read flag update failed", "room", cell.ID, "error", err)
	}
	if room, ok, _ := c.store.FindFirstBy(domain.FieldChatID, cell.ID); ok {
		c.badges.Update(room, c.cells)
	}
	c.publishView()
}

// OnPartyJoined resyncs the list against the new party node and selects
// its head.
func (c *Controller) OnPartyJoined() {
	c.Reload()
	c.selectHead()
	c.checkForParty()
}

// OnPartyLeft resyncs the list, now outside any party context, and
// drops every cached room log the character owns.
func (c *Controller) OnPartyLeft() {
	c.Reload()
	c.directory.PurgeAll(c.characterID)
	c.checkForParty()
}

// Reload recomputes the room list and its cell projection from the
// store and publishes the fresh view state. A selection pointing at a
// room that vanished from the list falls back to no active room.
func (c *Controller) Reload() {
	c.rooms = c.directory.Reload(c.characterID, c.transport.CurrentPartyNode())
	c.cells = c.directory.Cells(c.rooms)
	if c.selected != "" {
		if _, ok := c.cellByID(c.selected); !ok {
			c.selected = ""
		}
	}
	c.publishView()
}

// Rooms returns the current room list in display order.
func (c *Controller) Rooms() []domain.Room {
	return c.rooms
}

// Cells returns the current cell list in display order.
func (c *Controller) Cells() []domain.Cell {
	return c.cells
}

// Selected returns the active room address, if any.
func (c *Controller) Selected() (string, bool) {
	return c.selected, c.selected != ""
}

// IsConnectedToParty reports whether the transport is joined to a party
// node, as of the last connectivity check.
func (c *Controller) IsConnectedToParty() bool {
	return c.connected
}

// Foreground reports whether the chat surface currently has the user's
// attention. Notifications are suppressed while it does.
func (c *Controller) Foreground() bool {
	return c.foreground
}

func (c *Controller) SetForeground(foreground bool) {
	c.foreground = foreground
}

func (c *Controller) subscribe() {
	if c.subs != nil {
		return
	}
	c.subs = []runtime.Subscription{
		c.bus.Subscribe(event.TopicMessageDelivered, c.onMessage),
		c.bus.Subscribe(event.TopicRoomListChanged, func(event.Event) { c.Reload() }),
		c.bus.Subscribe(event.TopicMemberJoined, c.onPresence),
		c.bus.Subscribe(event.TopicMemberLeft, c.onPresence),
		c.bus.Subscribe(event.TopicPartyJoined, func(event.Event) { c.OnPartyJoined() }),
		c.bus.Subscribe(event.TopicPartyLeft, func(event.Event) { c.OnPartyLeft() }),
		c.bus.Subscribe(event.TopicPartyMembersChanged, func(event.Event) { c.Reload() }),
	}
}

func (c *Controller) onMessage(e event.Event) {
	if delivered, ok := e.(event.MessageDelivered); ok {
		c.router.Deliver(delivered.Room, delivered.Message, delivered.Delay, delivered.HideTitle)
	}
}

func (c *Controller) onPresence(e event.Event) {
	if presence, ok := e.(event.Presence); ok {
		c.router.HandlePresence(presence)
	}
}

func (c *Controller) selectHead() {
	if len(c.cells) == 0 {
		c.selected = ""
		c.publishView()
		return
	}
	c.SelectRoom(c.cells[0])
}

func (c *Controller) checkForParty() {
	c.connected = c.transport.CurrentPartyNode() != ""
}

func (c *Controller) cellByID(id string) (domain.Cell, bool) {
	return lo.Find(c.cells, func(cell domain.Cell) bool {
		return cell.ID == id
	})
}

func (c *Controller) publishView() {
	c.bus.Publish(event.ViewRefreshed{
		Cells:    append([]domain.Cell(nil), c.cells...),
		Selected: c.selected,
	})
}

// roomToken returns a short, collision resistant local room name.
func roomToken() string {
	return uuid.NewString()[:6]
}
