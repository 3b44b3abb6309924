// Package activity keeps the per-session history of successful generations.
package activity

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"marketai/internal/models"
)

// PreviewLength is the number of characters kept in an entry preview.
const PreviewLength = 150

// Ellipsis marks a truncated preview.
const Ellipsis = "..."

// ErrSessionRequired is returned when an operation has no session to act on.
var ErrSessionRequired = errors.New("session id is required")

// Store persists activity entries per session. Append assigns the entry id
// and must do so atomically per session: ids start at 1 and are never reused.
type Store interface {
	Append(ctx context.Context, sessionID string, entry models.Activity) (models.Activity, error)
	// List returns up to limit entries, newest first. limit <= 0 returns all.
	List(ctx context.Context, sessionID string, limit int) ([]models.Activity, error)
	Ping(ctx context.Context) error
}

// Log builds entries and records them in a Store.
type Log struct {
	store Store
	now   func() time.Time
}

// NewLog creates a log backed by store.
func NewLog(store Store) *Log {
	return &Log{store: store, now: time.Now}
}

// Append records a successful action for the session.
func (l *Log) Append(ctx context.Context, sessionID string, kind models.UseCase, data map[string]any, previewText string) (models.Activity, error) {
	if sessionID == "" {
		return models.Activity{}, ErrSessionRequired
	}
	if data == nil {
		data = map[string]any{}
	}
	return l.store.Append(ctx, sessionID, models.Activity{
		Type:      kind,
		Data:      data,
		Preview:   Preview(previewText),
		Timestamp: l.now(),
	})
}

// List returns the session's most recent entries, newest first.
func (l *Log) List(ctx context.Context, sessionID string, limit int) ([]models.Activity, error) {
	if sessionID == "" {
		return []models.Activity{}, nil
	}
	return l.store.List(ctx, sessionID, limit)
}

// Ping checks that the backing store is reachable.
func (l *Log) Ping(ctx context.Context) error {
	return l.store.Ping(ctx)
}

// Preview truncates text to PreviewLength characters, appending Ellipsis when
// anything was cut.
func Preview(text string) string {
	return Truncate(text, PreviewLength, Ellipsis)
}

// Truncate cuts s to at most n characters and appends marker if it did.
func Truncate(s string, n int, marker string) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + marker
}
