package databases

// go generate: mockery --name MessageDatabase

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/linesmerrill/cohort-site/models"
)

const (
	messagesJSONName = "message_board.json"
	messagesCSVName  = "message_board.csv"

	// DefaultAuthor is stored when a message is posted without an author
	DefaultAuthor = "Anonymous"

	// ISOTimeFormat matches the millisecond UTC timestamps used across the flat files
	ISOTimeFormat = "2006-01-02T15:04:05.000Z"
)

var messageCSVHeader = []string{"id", "created_at", "author", "message"}

// ErrMessageRequired is the message carried by the validation error for a blank message
const ErrMessageRequired = "Message is required"

// MessageDatabase contains the methods to use with the message board files
type MessageDatabase interface {
	LoadAll(ctx context.Context) []models.Message
	Append(ctx context.Context, author, message string) (models.Message, error)
	Reconcile(ctx context.Context) (int, error)
}

type messageDatabase struct {
	db  DatabaseHelper
	val *validator.Validate
	now func() time.Time

	// mu serializes the read-modify-write of the JSON document
	mu sync.Mutex
}

// NewMessageDatabase initializes a new instance of message database with the provided file helper
func NewMessageDatabase(db DatabaseHelper) MessageDatabase {
	return &messageDatabase{
		db:  db,
		val: validator.New(),
		now: time.Now,
	}
}

// LoadAll returns every stored message in insertion order. A missing or unreadable
// document is treated as an empty board.
func (m *messageDatabase) LoadAll(ctx context.Context) []models.Message {
	messages := []models.Message{}

	raw, err := m.db.ReadFile(messagesJSONName)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			zap.S().Errorw("failed to read messages json",
				"path", m.db.Path(messagesJSONName),
				"error", err)
		}
		return messages
	}

	if err := json.Unmarshal(raw, &messages); err != nil {
		zap.S().Errorw("failed to parse messages json",
			"path", m.db.Path(messagesJSONName),
			"error", err)
		return []models.Message{}
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages
}

// Append validates and stores a new message. The JSON document is rewritten in full
// and one row is appended to the CSV mirror. A CSV failure is only logged.
func (m *messageDatabase) Append(ctx context.Context, author, message string) (models.Message, error) {
	// invalid UTF-8 becomes U+FFFD here, as json.Marshal would do, so the
	// JSON document and its CSV mirror hold the same text
	message = strings.TrimSpace(strings.ToValidUTF8(message, "\uFFFD"))
	if message == "" {
		return models.Message{}, &models.ValidationError{Field: "message", Message: ErrMessageRequired}
	}
	author = strings.TrimSpace(strings.ToValidUTF8(author, "\uFFFD"))
	if author == "" {
		author = DefaultAuthor
	}
	if err := ctx.Err(); err != nil {
		return models.Message{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	messages := m.LoadAll(ctx)

	now := m.now().UTC()
	msg := models.Message{
		ID:        nextID(now, messages),
		Author:    author,
		Message:   message,
		CreatedAt: now.Format(ISOTimeFormat),
	}
	if err := m.val.Struct(msg); err != nil {
		return models.Message{}, &models.ValidationError{Field: "message", Message: err.Error()}
	}

	messages = append(messages, msg)
	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return models.Message{}, &models.StorageError{Op: "encode", Path: m.db.Path(messagesJSONName), Err: err}
	}
	if err := m.db.WriteFile(messagesJSONName, data); err != nil {
		return models.Message{}, &models.StorageError{Op: "write", Path: m.db.Path(messagesJSONName), Err: err}
	}

	if err := m.db.AppendCSV(messagesCSVName, messageCSVHeader, messageRow(msg)); err != nil {
		zap.S().Errorw("failed to write message csv",
			"path", m.db.Path(messagesCSVName),
			"id", msg.ID,
			"error", err)
	}

	return msg, nil
}

// Reconcile appends to the CSV mirror every message that is in the JSON document
// but missing from the mirror, in document order. It returns how many rows were added.
func (m *messageDatabase) Reconcile(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	messages := m.LoadAll(ctx)

	seen := map[string]bool{}
	records, err := m.db.ReadCSV(messagesCSVName)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return 0, &models.StorageError{Op: "read", Path: m.db.Path(messagesCSVName), Err: err}
	}
	for i, rec := range records {
		if i == 0 || len(rec) == 0 {
			continue
		}
		seen[rec[0]] = true
	}

	var missing [][]string
	known := make(map[string]bool, len(messages))
	for _, msg := range messages {
		known[msg.ID] = true
		if !seen[msg.ID] {
			missing = append(missing, messageRow(msg))
		}
	}

	for id := range seen {
		if !known[id] {
			zap.S().Warnw("message csv has a row with no matching json entry",
				"path", m.db.Path(messagesCSVName),
				"id", id)
		}
	}

	if len(missing) == 0 {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := m.db.AppendCSV(messagesCSVName, messageCSVHeader, missing...); err != nil {
		return 0, &models.StorageError{Op: "append", Path: m.db.Path(messagesCSVName), Err: err}
	}
	return len(missing), nil
}

func messageRow(msg models.Message) []string {
	author := msg.Author
	if author == "" {
		author = DefaultAuthor
	}
	return []string{msg.ID, msg.CreatedAt, author, msg.Message}
}

// nextID returns the millisecond timestamp of now, bumped past the newest stored id
// so ids stay unique and increasing when two posts land in the same millisecond.
func nextID(now time.Time, existing []models.Message) string {
	id := now.UnixMilli()
	if n := len(existing); n > 0 {
		if last, err := strconv.ParseInt(existing[n-1].ID, 10, 64); err == nil && last >= id {
			id = last + 1
		}
	}
	return strconv.FormatInt(id, 10)
}
