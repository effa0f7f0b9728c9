package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"party-chat/contract"
	"party-chat/domain"
	"party-chat/errors"
)

const stampDigits = 19

// ChatRepository persists room records and message logs in BadgerDB.
//
// Keys:
//  1. "room:{created_padded}:{chat_id}" room record, JSON encoded.
//  2. "msg:{chat_id}:{at_padded}:{uuid}" log entry, JSON encoded.
//
// Timestamps use 19-digit zero padding so lexicographical key order is
// chronological order: room scans yield insertion order, message scans
// yield arrival order, and the UUID suffix disambiguates two messages
// landing on the same nanosecond.
type ChatRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewChatRepository(db *badger.DB, log *slog.Logger) *ChatRepository {
	return &ChatRepository{db: db, log: log}
}

type roomRecord struct {
	ChatID      string    `json:"chatId"`
	CharacterID string    `json:"characterId"`
	PartyID     string    `json:"partyId"`
	IsParty     bool      `json:"isParty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type messageRecord struct {
	ID     string `json:"id"`
	ChatID string `json:"chatId"`
	Sender string `json:"sender"`
	Type   int    `json:"type"`
	Body   string `json:"body"`
	At     int64  `json:"at"` // unix nanoseconds
	Read   bool   `json:"read"`
}

// SaveRoom inserts or updates a room record. Updates keep the original
// key so the record keeps its place in insertion order.
func (r *ChatRepository) SaveRoom(room domain.Room) error {
	if room.ChatID == "" {
		return errors.ErrInvalidAddress
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now().UTC()
	}
	return r.db.Update(func(txn *badger.Txn) error {
		key, err := roomKey(txn, room.ChatID)
		if err == errors.ErrRoomNotFound {
			key = []byte(fmt.Sprintf("room:%0*d:%s", stampDigits, room.CreatedAt.UnixNano(), room.ChatID))
		} else if err != nil {
			return err
		}
		bytes, err := json.Marshal(fromRoom(room))
		if err != nil {
			return err
		}
		return txn.Set(key, bytes)
	})
}

// DeleteRoom removes a room record. A missing record is not an error.
func (r *ChatRepository) DeleteRoom(chatID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, err := roomKey(txn, chatID)
		if err == errors.ErrRoomNotFound {
			r.log.Debug("No record to delete", "room", chatID)
			return nil
		}
		if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

func (r *ChatRepository) FindBy(field, value string) ([]domain.Room, error) {
	return r.FindByPredicates(contract.KeyValuePredicate{Field: field, Value: value})
}

func (r *ChatRepository) FindFirstBy(field, value string) (domain.Room, bool, error) {
	rooms, err := r.FindBy(field, value)
	if err != nil || len(rooms) == 0 {
		return domain.Room{}, false, err
	}
	return rooms[0], true, nil
}

// FindByPredicates scans the room records in insertion order and keeps
// those matching every predicate.
func (r *ChatRepository) FindByPredicates(predicates ...contract.RoomPredicate) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("room:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var record roomRecord
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				room := toRoom(record)
				for _, predicate := range predicates {
					if !predicate.Matches(room) {
						return nil
					}
				}
				rooms = append(rooms, room)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return rooms, err
}

// AppendMessage persists one log entry under the room's message prefix.
func (r *ChatRepository) AppendMessage(message domain.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.At.IsZero() {
		message.At = time.Now().UTC()
	}
	key := fmt.Sprintf("msg:%s:%0*d:%s", message.ChatID, stampDigits, message.At.UnixNano(), message.ID)
	bytes, err := json.Marshal(fromMessage(message))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Messages returns a room's log in arrival order.
func (r *ChatRepository) Messages(chatID string) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("msg:" + chatID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var record messageRecord
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				message, err := toMessage(record)
				if err != nil {
					return err
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return messages, err
}

// UnreadCount counts the log entries not marked read yet.
func (r *ChatRepository) UnreadCount(chatID string) (int, error) {
	unread := 0
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("msg:" + chatID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var record messageRecord
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				if !record.Read {
					unread++
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return unread, err
}

// MarkRead flags every entry currently in the log as read. Entries
// appended afterwards start unread again.
func (r *ChatRepository) MarkRead(chatID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)

		prefix := []byte("msg:" + chatID + ":")
		type pending struct {
			key   []byte
			value []byte
		}
		var updates []pending
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(value []byte) error {
				var record messageRecord
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				if record.Read {
					return nil
				}
				record.Read = true
				bytes, err := json.Marshal(record)
				if err != nil {
					return err
				}
				updates = append(updates, pending{key: item.KeyCopy(nil), value: bytes})
				return nil
			})
			if err != nil {
				it.Close()
				return err
			}
		}
		it.Close()

		for _, update := range updates {
			if err := txn.Set(update.key, update.value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Purge clears a room's message log. The room record survives:
// histories are an ephemeral client side cache of the server held log.
func (r *ChatRepository) Purge(chatID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)

		prefix := []byte("msg:" + chatID + ":")
		var stale [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// roomKey resolves the storage key of a room record by scanning the
// room prefix; records are few, so the scan stays cheap.
func roomKey(txn *badger.Txn, chatID string) ([]byte, error) {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	prefix := []byte("room:")
	suffix := ":" + chatID
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		key := string(it.Item().Key())
		if len(key) >= len(suffix) && key[len(key)-len(suffix):] == suffix {
			return it.Item().KeyCopy(nil), nil
		}
	}
	return nil, errors.ErrRoomNotFound
}

func fromRoom(room domain.Room) roomRecord {
	return roomRecord{
		ChatID:      room.ChatID,
		CharacterID: room.CharacterID,
		PartyID:     room.PartyID,
		IsParty:     room.IsParty,
		CreatedAt:   room.CreatedAt,
	}
}

func toRoom(record roomRecord) domain.Room {
	return domain.Room{
		ChatID:      record.ChatID,
		CharacterID: record.CharacterID,
		PartyID:     record.PartyID,
		IsParty:     record.IsParty,
		CreatedAt:   record.CreatedAt,
	}
}

func fromMessage(message domain.Message) messageRecord {
	return messageRecord{
		ID:     message.ID.String(),
		ChatID: message.ChatID,
		Sender: message.Sender,
		Type:   int(message.Type),
		Body:   message.Body,
		At:     message.At.UnixNano(),
		Read:   message.Read,
	}
}

func toMessage(record messageRecord) (domain.Message, error) {
	parsedID, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:     parsedID,
		ChatID: record.ChatID,
		Sender: record.Sender,
		Type:   domain.MessageType(record.Type),
		Body:   record.Body,
		At:     time.Unix(0, record.At).UTC(),
		Read:   record.Read,
	}, nil
}
