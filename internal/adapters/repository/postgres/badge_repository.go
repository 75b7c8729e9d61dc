package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/google/uuid"
)

type badgeRepository struct {
	db *sql.DB
}

func NewBadgeRepository(db *sql.DB) ports.BadgeRepository {
	return &badgeRepository{
		db: db,
	}
}

func (r *badgeRepository) ListAll(ctx context.Context) ([]*domain.Badge, error) {
	query := `
		SELECT id, name, description, streak_threshold, created_at
		FROM badges
		ORDER BY streak_threshold
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	defer rows.Close()

	return r.scanBadges(rows)
}

func (r *badgeRepository) ListEligible(ctx context.Context, streak int) ([]*domain.Badge, error) {
	query := `
		SELECT id, name, description, streak_threshold, created_at
		FROM badges
		WHERE streak_threshold <= $1
		ORDER BY streak_threshold
	`
	rows, err := r.db.QueryContext(ctx, query, streak)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible badges: %w", err)
	}
	defer rows.Close()

	return r.scanBadges(rows)
}

func (r *badgeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.UserBadge, error) {
	query := `
		SELECT ub.user_id, ub.badge_id, ub.habit_id, ub.awarded_at,
		       b.id, b.name, b.description, b.streak_threshold, b.created_at
		FROM user_badges ub
		JOIN badges b ON b.id = ub.badge_id
		WHERE ub.user_id = $1
		ORDER BY ub.awarded_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user badges: %w", err)
	}
	defer rows.Close()

	var userBadges []*domain.UserBadge
	for rows.Next() {
		var ub domain.UserBadge
		var badge domain.Badge
		if err := rows.Scan(
			&ub.UserID, &ub.BadgeID, &ub.HabitID, &ub.AwardedAt,
			&badge.ID, &badge.Name, &badge.Description, &badge.StreakThreshold, &badge.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user badge: %w", err)
		}
		ub.Badge = &badge
		userBadges = append(userBadges, &ub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user badges: %w", err)
	}
	return userBadges, nil
}

func (r *badgeRepository) Award(ctx context.Context, userID, badgeID, habitID uuid.UUID) error {
	query := `
		INSERT INTO user_badges (user_id, badge_id, habit_id, awarded_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, badge_id, habit_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID, badgeID, habitID); err != nil {
		return fmt.Errorf("failed to award badge: %w", err)
	}
	return nil
}

func (r *badgeRepository) scanBadges(rows *sql.Rows) ([]*domain.Badge, error) {
	var badges []*domain.Badge
	for rows.Next() {
		var badge domain.Badge
		if err := rows.Scan(&badge.ID, &badge.Name, &badge.Description, &badge.StreakThreshold, &badge.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, &badge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating badges: %w", err)
	}
	return badges, nil
}
