package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/google/uuid"
)

type habitRepository struct {
	db *sql.DB
}

func NewHabitRepository(db *sql.DB) ports.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

func (r *habitRepository) Save(ctx context.Context, habit *domain.Habit) error {
	query := `
		INSERT INTO habits (id, user_id, name, description, frequency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		habit.ID, habit.UserID, habit.Name, habit.Description, habit.Frequency,
	).Scan(&habit.CreatedAt, &habit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}
	return nil
}

func (r *habitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	query := `
		SELECT id, user_id, name, description, frequency, current_streak, longest_streak,
		       last_completed_at, is_archived, created_at, updated_at
		FROM habits
		WHERE id = $1
	`
	var habit domain.Habit
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&habit.ID, &habit.UserID, &habit.Name, &habit.Description, &habit.Frequency,
		&habit.CurrentStreak, &habit.LongestStreak, &habit.LastCompletedAt,
		&habit.IsArchived, &habit.CreatedAt, &habit.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}
	return &habit, nil
}

func (r *habitRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Habit, error) {
	query := `
		SELECT id, user_id, name, description, frequency, current_streak, longest_streak,
		       last_completed_at, is_archived, created_at, updated_at
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		var habit domain.Habit
		if err := rows.Scan(
			&habit.ID, &habit.UserID, &habit.Name, &habit.Description, &habit.Frequency,
			&habit.CurrentStreak, &habit.LongestStreak, &habit.LastCompletedAt,
			&habit.IsArchived, &habit.CreatedAt, &habit.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, &habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating habits: %w", err)
	}
	return habits, nil
}

func (r *habitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	query := `
		UPDATE habits
		SET name = $2, description = $3, current_streak = $4, longest_streak = $5,
		    last_completed_at = $6, is_archived = $7, updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		habit.ID, habit.Name, habit.Description, habit.CurrentStreak,
		habit.LongestStreak, habit.LastCompletedAt, habit.IsArchived,
	)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}
