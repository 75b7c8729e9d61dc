package services

import (
	"context"
	"fmt"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/google/uuid"
)

type habitService struct {
	repo ports.HabitRepository
}

func NewHabitService(repo ports.HabitRepository) ports.HabitService {
	return &habitService{
		repo: repo,
	}
}

func (s *habitService) Create(ctx context.Context, input ports.CreateHabitInput) (*domain.Habit, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	frequency := input.Frequency
	if frequency == "" {
		frequency = domain.FrequencyDaily
	}
	if frequency != domain.FrequencyDaily {
		return nil, fmt.Errorf("%w: unsupported frequency %q", domain.ErrValidation, frequency)
	}

	habit := &domain.Habit{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
		Frequency:   frequency,
	}

	if err := s.repo.Save(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to save habit: %w", err)
	}
	return habit, nil
}

func (s *habitService) Get(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrHabitNotFound
	}
	return habit, nil
}

func (s *habitService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Habit, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *habitService) Update(ctx context.Context, userID, habitID uuid.UUID, input ports.UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.Get(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		habit.Name = *input.Name
	}
	if input.Description != nil {
		habit.Description = *input.Description
	}
	if input.IsArchived != nil {
		habit.IsArchived = *input.IsArchived
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}
	return habit, nil
}

func (s *habitService) Archive(ctx context.Context, userID, habitID uuid.UUID) error {
	archived := true
	_, err := s.Update(ctx, userID, habitID, ports.UpdateHabitInput{IsArchived: &archived})
	return err
}
