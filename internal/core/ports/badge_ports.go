package ports

import (
	"context"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type BadgeRepository interface {
	ListAll(ctx context.Context) ([]*domain.Badge, error)
	// ListEligible returns badges whose streak threshold is at most streak.
	ListEligible(ctx context.Context, streak int) ([]*domain.Badge, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.UserBadge, error)
	// Award is an idempotent upsert; awarding the same badge twice is a no-op.
	Award(ctx context.Context, userID, badgeID, habitID uuid.UUID) error
}

type BadgeService interface {
	ListAll(ctx context.Context) ([]*domain.Badge, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.UserBadge, error)
	AwardEligible(ctx context.Context, userID, habitID uuid.UUID, streak int) error
	SweepAll(ctx context.Context) error
}
