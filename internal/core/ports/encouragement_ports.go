package ports

import (
	"context"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type EncouragementRepository interface {
	Save(ctx context.Context, encouragement *domain.Encouragement) error
	ListReceived(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Encouragement, error)
}

type SendEncouragementInput struct {
	FromUserID uuid.UUID
	ToUserID   uuid.UUID
	HabitID    *uuid.UUID
	Message    string
}

type EncouragementService interface {
	Send(ctx context.Context, input SendEncouragementInput) (*domain.Encouragement, error)
	ListReceived(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Encouragement, error)
}
