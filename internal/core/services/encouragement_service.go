package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/google/uuid"
)

type encouragementService struct {
	repo     ports.EncouragementRepository
	userRepo ports.UserRepository
}

func NewEncouragementService(repo ports.EncouragementRepository, userRepo ports.UserRepository) ports.EncouragementService {
	return &encouragementService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *encouragementService) Send(ctx context.Context, input ports.SendEncouragementInput) (*domain.Encouragement, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrValidation)
	}
	if len(message) > domain.EncouragementMaxLength {
		return nil, fmt.Errorf("%w: message must be at most %d characters", domain.ErrValidation, domain.EncouragementMaxLength)
	}
	if strings.ContainsAny(message, "<>") {
		return nil, fmt.Errorf("%w: message cannot contain HTML", domain.ErrValidation)
	}
	if input.FromUserID == input.ToUserID {
		return nil, fmt.Errorf("%w: cannot encourage yourself", domain.ErrValidation)
	}

	recipient, err := s.userRepo.GetByID(ctx, input.ToUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}
	if recipient == nil {
		return nil, domain.ErrUserNotFound
	}

	encouragement := &domain.Encouragement{
		ID:         uuid.New(),
		FromUserID: input.FromUserID,
		ToUserID:   input.ToUserID,
		HabitID:    input.HabitID,
		Message:    message,
	}

	if err := s.repo.Save(ctx, encouragement); err != nil {
		return nil, fmt.Errorf("failed to save encouragement: %w", err)
	}
	return encouragement, nil
}

func (s *encouragementService) ListReceived(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Encouragement, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListReceived(ctx, userID, limit, offset)
}
