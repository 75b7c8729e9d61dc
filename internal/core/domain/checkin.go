package domain

import (
	"time"

	"github.com/google/uuid"
)

type CheckIn struct {
	ID            uuid.UUID `json:"id"`
	HabitID       uuid.UUID `json:"habit_id"`
	UserID        uuid.UUID `json:"user_id"`
	CompletedAt   time.Time `json:"completed_at"`
	StreakDay     int       `json:"streak_day"`
	IsManualEntry bool      `json:"is_manual_entry"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CompletedOn is the UTC calendar date of the check-in. Streak continuity is
// decided on these dates, not on raw timestamps.
func (c *CheckIn) CompletedOn() time.Time {
	y, m, d := c.CompletedAt.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
