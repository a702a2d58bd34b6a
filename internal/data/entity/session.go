package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an opaque bearer token handed out at login. A session is
// valid until it expires or is revoked by logout.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
