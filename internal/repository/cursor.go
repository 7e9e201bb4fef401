package repository

import (
	"encoding/base64"
	"encoding/json"
	"time"

	apperrors "crm-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cursor marks the last row of a keyset page ordered by created_at DESC, id DESC
type Cursor struct {
	CreatedAt time.Time `json:"created_at"`
	ID        uuid.UUID `json:"id"`
}

// Encode returns the opaque base64url representation handed to API clients
func (c Cursor) Encode() string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor parses a cursor produced by Encode. An empty string yields a nil cursor.
func DecodeCursor(s string) (*Cursor, error) {
	if s == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, apperrors.ErrInvalidCursor
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, apperrors.ErrInvalidCursor
	}
	if c.ID == uuid.Nil || c.CreatedAt.IsZero() {
		return nil, apperrors.ErrInvalidCursor
	}
	return &c, nil
}

// applyCursor restricts a query to rows after the cursor and applies the keyset order.
// limit+1 rows are fetched so callers can tell whether another page exists.
func applyCursor(q *gorm.DB, table string, c *Cursor, limit int) *gorm.DB {
	if c != nil {
		q = q.Where("("+table+".created_at, "+table+".id) < (?, ?)", c.CreatedAt, c.ID)
	}
	return q.Order(table + ".created_at DESC").Order(table + ".id DESC").Limit(limit + 1)
}
