package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Read-only viewer for the session database: lists room records and,
// with -messages, the per-room logs.
func main() {
	dbPath := flag.String("db", "", "Path to badger DB")
	withMessages := flag.Bool("messages", false, "Also list message logs")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("-db is required")
	}

	// BypassLockGuard allows opening while a live session holds the lock.
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render("Rooms"))
	if err := renderRooms(db); err != nil {
		log.Fatal(err)
	}

	if *withMessages {
		fmt.Println(color.New(color.BgBlack, color.FgGreen).Render("Messages"))
		if err := renderMessages(db); err != nil {
			log.Fatal(err)
		}
	}
}

type roomRow struct {
	ChatID      string    `json:"chatId"`
	CharacterID string    `json:"characterId"`
	PartyID     string    `json:"partyId"`
	IsParty     bool      `json:"isParty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type messageRow struct {
	ChatID string `json:"chatId"`
	Sender string `json:"sender"`
	Type   int    `json:"type"`
	Body   string `json:"body"`
	At     int64  `json:"at"`
}

func renderRooms(db *badger.DB) error {
	table := newTable([]string{"Key", "Chat ID", "Character", "Party", "Created"})
	err := scan(db, "room:", func(key string, value []byte) {
		var row roomRow
		if err := json.Unmarshal(value, &row); err != nil {
			fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
			return
		}
		chatID := row.ChatID
		if row.IsParty {
			chatID = color.New(color.FgYellow).Render(chatID + " (party)")
		}
		table.Append([]string{key, chatID, row.CharacterID, row.PartyID, row.CreatedAt.Format("15:04:05")})
	})
	if err != nil {
		return err
	}
	table.Render()
	return nil
}

func renderMessages(db *badger.DB) error {
	table := newTable([]string{"Key", "Room", "Sender", "Type", "Body"})
	err := scan(db, "msg:", func(key string, value []byte) {
		var row messageRow
		if err := json.Unmarshal(value, &row); err != nil {
			fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
			return
		}
		kind := "normal"
		if row.Type != 0 {
			kind = "meta"
		}
		body := row.Body
		if len(body) > 48 {
			body = body[:48]
		}
		table.Append([]string{key, row.ChatID, row.Sender, kind, body})
	})
	if err != nil {
		return err
	}
	table.Render()
	return nil
}

func scan(db *badger.DB, prefix string, visit func(key string, value []byte)) error {
	return db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				visit(string(item.Key()), v)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
