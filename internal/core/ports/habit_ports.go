package ports

import (
	"context"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type HabitRepository interface {
	Save(ctx context.Context, habit *domain.Habit) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Habit, error)
	Update(ctx context.Context, habit *domain.Habit) error
}

type CreateHabitInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Frequency   string
}

type UpdateHabitInput struct {
	Name        *string
	Description *string
	IsArchived  *bool
}

type HabitService interface {
	Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error)
	Get(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Habit, error)
	Update(ctx context.Context, userID, habitID uuid.UUID, input UpdateHabitInput) (*domain.Habit, error)
	Archive(ctx context.Context, userID, habitID uuid.UUID) error
}
