package domain

import (
	"time"

	"github.com/google/uuid"
)

const EncouragementMaxLength = 500

type Encouragement struct {
	ID         uuid.UUID  `json:"id"`
	FromUserID uuid.UUID  `json:"from_user_id"`
	ToUserID   uuid.UUID  `json:"to_user_id"`
	HabitID    *uuid.UUID `json:"habit_id,omitempty"`
	Message    string     `json:"message"`
	CreatedAt  time.Time  `json:"created_at"`
}
