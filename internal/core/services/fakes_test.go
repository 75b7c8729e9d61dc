package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/google/uuid"
)

// In-memory repository fakes. They mirror the Postgres adapters' contracts,
// including the unique check-in-per-day index, so service tests exercise the
// same failure paths the real store produces.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListIDs(_ context.Context) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeTokenRepo struct {
	mu        sync.Mutex
	tokens    map[string]*domain.RefreshToken
	failStore bool
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*domain.RefreshToken)}
}

func (r *fakeTokenRepo) Store(_ context.Context, token *domain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failStore {
		return errors.New("connection refused")
	}
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *fakeTokenRepo) GetByToken(_ context.Context, token string) (*domain.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.tokens[token]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (r *fakeTokenRepo) Revoke(_ context.Context, token string, revokedAt time.Time, revokedByIP string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.tokens[token]
	if !ok || row.IsRevoked {
		return false, nil
	}
	row.IsRevoked = true
	row.RevokedAt = &revokedAt
	if revokedByIP != "" {
		row.RevokedByIP = &revokedByIP
	}
	return true, nil
}

type fakeHabitRepo struct {
	mu     sync.Mutex
	habits map[uuid.UUID]*domain.Habit
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{habits: make(map[uuid.UUID]*domain.Habit)}
}

func (r *fakeHabitRepo) Save(_ context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	habit.CreatedAt = time.Now()
	habit.UpdatedAt = habit.CreatedAt
	copied := *habit
	r.habits[habit.ID] = &copied
	return nil
}

func (r *fakeHabitRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	habit, ok := r.habits[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	copied := *habit
	return &copied, nil
}

func (r *fakeHabitRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var habits []*domain.Habit
	for _, h := range r.habits {
		if h.UserID == userID {
			copied := *h
			habits = append(habits, &copied)
		}
	}
	return habits, nil
}

func (r *fakeHabitRepo) Update(_ context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.habits[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}
	habit.UpdatedAt = time.Now()
	copied := *habit
	r.habits[habit.ID] = &copied
	return nil
}

type fakeCheckInRepo struct {
	mu       sync.Mutex
	checkIns []*domain.CheckIn
}

func newFakeCheckInRepo() *fakeCheckInRepo {
	return &fakeCheckInRepo{}
}

func (r *fakeCheckInRepo) Save(_ context.Context, checkIn *domain.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.checkIns {
		if existing.HabitID == checkIn.HabitID && existing.CompletedOn().Equal(checkIn.CompletedOn()) {
			return domain.ErrAlreadyCheckedIn
		}
	}
	copied := *checkIn
	r.checkIns = append(r.checkIns, &copied)
	return nil
}

func (r *fakeCheckInRepo) Latest(_ context.Context, habitID uuid.UUID) (*domain.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *domain.CheckIn
	for _, c := range r.checkIns {
		if c.HabitID != habitID {
			continue
		}
		if latest == nil || c.CompletedAt.After(latest.CompletedAt) {
			latest = c
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeCheckInRepo) ListByHabit(_ context.Context, habitID uuid.UUID, limit, offset int) ([]*domain.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var checkIns []*domain.CheckIn
	for _, c := range r.checkIns {
		if c.HabitID == habitID {
			copied := *c
			checkIns = append(checkIns, &copied)
		}
	}
	return checkIns, nil
}

type awardKey struct {
	UserID  uuid.UUID
	BadgeID uuid.UUID
	HabitID uuid.UUID
}

type fakeBadgeRepo struct {
	mu     sync.Mutex
	badges []*domain.Badge
	awards map[awardKey]time.Time
}

func newFakeBadgeRepo(badges ...*domain.Badge) *fakeBadgeRepo {
	return &fakeBadgeRepo{badges: badges, awards: make(map[awardKey]time.Time)}
}

func (r *fakeBadgeRepo) ListAll(_ context.Context) ([]*domain.Badge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.Badge(nil), r.badges...), nil
}

func (r *fakeBadgeRepo) ListEligible(_ context.Context, streak int) ([]*domain.Badge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var eligible []*domain.Badge
	for _, b := range r.badges {
		if b.StreakThreshold <= streak {
			eligible = append(eligible, b)
		}
	}
	return eligible, nil
}

func (r *fakeBadgeRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.UserBadge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var userBadges []*domain.UserBadge
	for key, awardedAt := range r.awards {
		if key.UserID != userID {
			continue
		}
		userBadges = append(userBadges, &domain.UserBadge{
			UserID:    key.UserID,
			BadgeID:   key.BadgeID,
			HabitID:   key.HabitID,
			AwardedAt: awardedAt,
		})
	}
	return userBadges, nil
}

func (r *fakeBadgeRepo) Award(_ context.Context, userID, badgeID, habitID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := awardKey{UserID: userID, BadgeID: badgeID, HabitID: habitID}
	if _, ok := r.awards[key]; !ok {
		r.awards[key] = time.Now()
	}
	return nil
}

type fakeEncouragementRepo struct {
	mu             sync.Mutex
	encouragements []*domain.Encouragement
}

func newFakeEncouragementRepo() *fakeEncouragementRepo {
	return &fakeEncouragementRepo{}
}

func (r *fakeEncouragementRepo) Save(_ context.Context, encouragement *domain.Encouragement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	encouragement.CreatedAt = time.Now()
	copied := *encouragement
	r.encouragements = append(r.encouragements, &copied)
	return nil
}

func (r *fakeEncouragementRepo) ListReceived(_ context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Encouragement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var received []*domain.Encouragement
	for _, e := range r.encouragements {
		if e.ToUserID == userID {
			copied := *e
			received = append(received, &copied)
		}
	}
	return received, nil
}
