package ports

import (
	"context"
	"time"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type CheckInRepository interface {
	Save(ctx context.Context, checkIn *domain.CheckIn) error
	// Latest returns the most recent check-in for the habit by completed_at,
	// or (nil, nil) when the habit has none.
	Latest(ctx context.Context, habitID uuid.UUID) (*domain.CheckIn, error)
	ListByHabit(ctx context.Context, habitID uuid.UUID, limit, offset int) ([]*domain.CheckIn, error)
}

type RecordCheckInInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
	// CompletedAt nil means "now". A caller-supplied value marks the
	// check-in as a manual entry.
	CompletedAt *time.Time
	Notes       string
}

type CheckInService interface {
	Record(ctx context.Context, input RecordCheckInInput) (*domain.CheckIn, error)
	ListByHabit(ctx context.Context, userID, habitID uuid.UUID, limit, offset int) ([]*domain.CheckIn, error)
}
