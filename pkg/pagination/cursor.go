// Package pagination implements opaque keyset cursors for intake listings,
// which sort by (logged_at, id) descending.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Cursor is the decoded sort key of the last row on a page. Listing resumes
// strictly after this key.
type Cursor struct {
	LoggedAt time.Time `json:"logged_at"`
	ID       uuid.UUID `json:"id"`
}

// Encode packs a sort key into the opaque token handed to clients.
func Encode(loggedAt time.Time, id uuid.UUID) string {
	data, _ := json.Marshal(Cursor{LoggedAt: loggedAt, ID: id})
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode unpacks a token produced by Encode. An empty token means the first
// page and yields a nil cursor without error.
func Decode(token string) (*Cursor, error) {
	if token == "" {
		return nil, nil
	}

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, errors.New("malformed cursor")
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil, errors.New("malformed cursor")
	}
	if cursor.LoggedAt.IsZero() || cursor.ID == uuid.Nil {
		return nil, errors.New("cursor missing sort key")
	}
	return &cursor, nil
}

// NormalizeLimit clamps a requested page size to [1, MaxLimit], applying
// DefaultLimit when the request does not name one.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
