package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type checkInRepository struct {
	db *sql.DB
}

func NewCheckInRepository(db *sql.DB) ports.CheckInRepository {
	return &checkInRepository{
		db: db,
	}
}

func (r *checkInRepository) Save(ctx context.Context, checkIn *domain.CheckIn) error {
	query := `
		INSERT INTO check_ins (id, habit_id, user_id, completed_at, completed_on, streak_day, is_manual_entry, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
	`
	_, err := r.db.ExecContext(ctx, query,
		checkIn.ID, checkIn.HabitID, checkIn.UserID, checkIn.CompletedAt,
		checkIn.CompletedOn(), checkIn.StreakDay, checkIn.IsManualEntry, checkIn.Notes,
	)
	if err != nil {
		// The (habit_id, completed_on) unique index backstops the in-process
		// lock when multiple instances share the database.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.ErrAlreadyCheckedIn
		}
		return fmt.Errorf("failed to save check-in: %w", err)
	}
	return nil
}

func (r *checkInRepository) Latest(ctx context.Context, habitID uuid.UUID) (*domain.CheckIn, error) {
	query := `
		SELECT id, habit_id, user_id, completed_at, streak_day, is_manual_entry, COALESCE(notes, ''), created_at
		FROM check_ins
		WHERE habit_id = $1
		ORDER BY completed_at DESC
		LIMIT 1
	`
	checkIn := &domain.CheckIn{}
	err := r.db.QueryRowContext(ctx, query, habitID).Scan(
		&checkIn.ID, &checkIn.HabitID, &checkIn.UserID, &checkIn.CompletedAt,
		&checkIn.StreakDay, &checkIn.IsManualEntry, &checkIn.Notes, &checkIn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest check-in: %w", err)
	}
	return checkIn, nil
}

func (r *checkInRepository) ListByHabit(ctx context.Context, habitID uuid.UUID, limit, offset int) ([]*domain.CheckIn, error) {
	query := `
		SELECT id, habit_id, user_id, completed_at, streak_day, is_manual_entry, COALESCE(notes, ''), created_at
		FROM check_ins
		WHERE habit_id = $1
		ORDER BY completed_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, habitID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []*domain.CheckIn
	for rows.Next() {
		var checkIn domain.CheckIn
		if err := rows.Scan(
			&checkIn.ID, &checkIn.HabitID, &checkIn.UserID, &checkIn.CompletedAt,
			&checkIn.StreakDay, &checkIn.IsManualEntry, &checkIn.Notes, &checkIn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		checkIns = append(checkIns, &checkIn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check-ins: %w", err)
	}
	return checkIns, nil
}
