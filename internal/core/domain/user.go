package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken is the stored half of a token pair. The Token column is the
// raw opaque value and is unique across all users. Rows are revoked, never
// deleted, so an audit trail of rotations survives.
type RefreshToken struct {
	Token       string     `json:"-"`
	UserID      uuid.UUID  `json:"user_id"`
	ExpiresAt   time.Time  `json:"expires_at"`
	IsRevoked   bool       `json:"is_revoked"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
	RevokedByIP *string    `json:"revoked_by_ip,omitempty"`
	CreatedByIP *string    `json:"created_by_ip,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Active reports whether the token can still be exchanged: not revoked and
// not past its expiry. Expiry is derived from time only; an expired row keeps
// is_revoked=false in storage.
func (t *RefreshToken) Active(now time.Time) bool {
	return !t.IsRevoked && now.Before(t.ExpiresAt)
}
