package main

import (
	"fmt"
	"os"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"party-chat/domain/event"
	"party-chat/infrastructure/transport"
	"party-chat/internal"
	"party-chat/repositories"
	"party-chat/runtime"
	"party-chat/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, drives a short scripted session over
// the loopback transport and centralizes error reporting, so every
// defer (database cleanup included) executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Session wiring
	bus := runtime.NewBus(log)
	store := repositories.NewChatRepository(db, log)
	loopback := transport.NewMemory(log, bus, store, config.Identity, config.CharacterID)
	controller := services.NewController(log, bus, loopback, store, config.CharacterID, config.MucDomain)

	bus.Subscribe(event.TopicUserNotification, func(e event.Event) {
		if note, ok := e.(event.UserNotification); ok {
			log.Info("Notification", "from", note.Sender, "preview", note.Preview)
		}
	})
	bus.Subscribe(event.TopicBadgeChanged, func(e event.Event) {
		if badge, ok := e.(event.BadgeChanged); ok {
			log.Info("Badge", "cell", badge.CellID, "count", badge.Count)
		}
	})

	controller.Initialize()
	defer controller.Teardown()

	// 4. Scripted session
	loopback.JoinParty(config.PartyNode)
	controller.AddRoom([]string{"alice@" + config.MucDomain, "bob@" + config.MucDomain})

	if selected, ok := controller.Selected(); ok {
		loopback.DeliverMessage(selected, "alice@"+config.MucDomain, "Roll for initiative!", false)
	}
	loopback.MemberJoined(config.PartyNode, "bob")

	for _, cell := range controller.Cells() {
		log.Info("Room", "id", cell.ID, "label", cell.Label, "badge", cell.Badge)
	}
	log.Info("Session state",
		"connected", controller.IsConnectedToParty(),
		"rooms", len(controller.Rooms()))

	log.Info("Program stopped cleanly")
	return nil
}
