package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/google/uuid"
)

type badgeService struct {
	userRepo  ports.UserRepository
	habitRepo ports.HabitRepository
	badgeRepo ports.BadgeRepository
}

func NewBadgeService(userRepo ports.UserRepository, habitRepo ports.HabitRepository, badgeRepo ports.BadgeRepository) ports.BadgeService {
	return &badgeService{
		userRepo:  userRepo,
		habitRepo: habitRepo,
		badgeRepo: badgeRepo,
	}
}

func (s *badgeService) ListAll(ctx context.Context) ([]*domain.Badge, error) {
	return s.badgeRepo.ListAll(ctx)
}

func (s *badgeService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.UserBadge, error) {
	return s.badgeRepo.ListByUser(ctx, userID)
}

// AwardEligible grants every badge whose threshold the streak has reached.
// Awards are idempotent upserts, so re-checking already-earned badges is fine.
func (s *badgeService) AwardEligible(ctx context.Context, userID, habitID uuid.UUID, streak int) error {
	eligible, err := s.badgeRepo.ListEligible(ctx, streak)
	if err != nil {
		return fmt.Errorf("failed to list eligible badges: %w", err)
	}
	for _, badge := range eligible {
		if err := s.badgeRepo.Award(ctx, userID, badge.ID, habitID); err != nil {
			return fmt.Errorf("failed to award badge %s: %w", badge.ID, err)
		}
	}
	return nil
}

// SweepAll re-evaluates badge eligibility for every user's habits. Used for
// backfill after the badge catalog changes.
func (s *badgeService) SweepAll(ctx context.Context) error {
	userIDs, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(userIDs))

	for _, userID := range userIDs {
		wg.Add(1)
		go func(uID uuid.UUID) {
			defer wg.Done()
			if err := s.sweepUser(ctx, uID); err != nil {
				errChan <- fmt.Errorf("failed to sweep user %s: %w", uID, err)
			}
		}(userID)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *badgeService) sweepUser(ctx context.Context, userID uuid.UUID) error {
	habits, err := s.habitRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, habit := range habits {
		if habit.CurrentStreak == 0 {
			continue
		}
		if err := s.AwardEligible(ctx, userID, habit.ID, habit.CurrentStreak); err != nil {
			return err
		}
	}
	return nil
}
