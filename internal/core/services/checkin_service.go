package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/google/uuid"
)

type checkInService struct {
	habitRepo   ports.HabitRepository
	checkInRepo ports.CheckInRepository
	badges      ports.BadgeService
	now         func() time.Time

	// Check-in creation is serialized per habit: two concurrent check-ins
	// reading the same "latest" row would both compute the same streak day.
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewCheckInService(habitRepo ports.HabitRepository, checkInRepo ports.CheckInRepository, badges ports.BadgeService) ports.CheckInService {
	return &checkInService{
		habitRepo:   habitRepo,
		checkInRepo: checkInRepo,
		badges:      badges,
		now:         time.Now,
		locks:       make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *checkInService) habitLock(habitID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[habitID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[habitID] = lock
	}
	return lock
}

// Record creates a check-in and advances the habit's streak counters.
//
// Streak continuity is decided on UTC calendar dates: the first check-in is
// day 1, a check-in on the date right after the latest one continues the
// streak, a larger gap resets it to 1. A second check-in on the same date is
// rejected, as is one dated before the latest entry.
func (s *checkInService) Record(ctx context.Context, input ports.RecordCheckInInput) (*domain.CheckIn, error) {
	lock := s.habitLock(input.HabitID)
	lock.Lock()
	defer lock.Unlock()

	habit, err := s.habitRepo.GetByID(ctx, input.HabitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != input.UserID {
		return nil, domain.ErrHabitNotFound
	}
	if habit.IsArchived {
		return nil, fmt.Errorf("%w: habit is archived", domain.ErrValidation)
	}

	now := s.now()
	completedAt := now
	manual := false
	if input.CompletedAt != nil {
		completedAt = *input.CompletedAt
		manual = true
	}
	if completedAt.After(now) {
		return nil, fmt.Errorf("%w: completed_at cannot be in the future", domain.ErrValidation)
	}
	if len(input.Notes) > domain.EncouragementMaxLength {
		return nil, fmt.Errorf("%w: notes must be at most %d characters", domain.ErrValidation, domain.EncouragementMaxLength)
	}

	latest, err := s.checkInRepo.Latest(ctx, input.HabitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest check-in: %w", err)
	}

	checkIn := &domain.CheckIn{
		ID:            uuid.New(),
		HabitID:       input.HabitID,
		UserID:        input.UserID,
		CompletedAt:   completedAt,
		IsManualEntry: manual,
		Notes:         input.Notes,
		CreatedAt:     now,
	}

	day := 1
	if latest != nil {
		prev := latest.CompletedOn()
		cur := checkIn.CompletedOn()
		switch {
		case cur.Equal(prev):
			return nil, domain.ErrAlreadyCheckedIn
		case cur.Before(prev):
			return nil, fmt.Errorf("%w: check-in predates the latest entry", domain.ErrValidation)
		case cur.Sub(prev) == 24*time.Hour:
			day = latest.StreakDay + 1
		}
	}
	checkIn.StreakDay = day

	if err := s.checkInRepo.Save(ctx, checkIn); err != nil {
		return nil, fmt.Errorf("failed to save check-in: %w", err)
	}

	habit.CurrentStreak = day
	if day > habit.LongestStreak {
		habit.LongestStreak = day
	}
	habit.LastCompletedAt = &completedAt
	if err := s.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit streaks: %w", err)
	}

	// The check-in is already persisted; a failed badge award must not undo it.
	if err := s.badges.AwardEligible(ctx, input.UserID, input.HabitID, day); err != nil {
		slog.ErrorContext(ctx, "failed to award badges", "habit_id", input.HabitID, "error", err)
	}

	return checkIn, nil
}

func (s *checkInService) ListByHabit(ctx context.Context, userID, habitID uuid.UUID, limit, offset int) ([]*domain.CheckIn, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrHabitNotFound
	}

	if limit <= 0 || limit > 100 {
		limit = 30
	}
	if offset < 0 {
		offset = 0
	}
	return s.checkInRepo.ListByHabit(ctx, habitID, limit, offset)
}
