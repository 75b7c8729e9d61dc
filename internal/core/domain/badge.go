package domain

import (
	"time"

	"github.com/google/uuid"
)

type Badge struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StreakThreshold int       `json:"streak_threshold"`
	CreatedAt       time.Time `json:"created_at"`
}

type UserBadge struct {
	UserID    uuid.UUID `json:"user_id"`
	BadgeID   uuid.UUID `json:"badge_id"`
	HabitID   uuid.UUID `json:"habit_id"`
	AwardedAt time.Time `json:"awarded_at"`
	Badge     *Badge    `json:"badge,omitempty"`
}
