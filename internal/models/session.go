package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the Postgres fallback record for an authenticated session.
// The hot path lives in Redis; rows here exist so sessions survive a cache
// flush.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
