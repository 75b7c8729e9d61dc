package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/google/uuid"
)

type encouragementRepository struct {
	db *sql.DB
}

func NewEncouragementRepository(db *sql.DB) ports.EncouragementRepository {
	return &encouragementRepository{
		db: db,
	}
}

func (r *encouragementRepository) Save(ctx context.Context, encouragement *domain.Encouragement) error {
	query := `
		INSERT INTO encouragements (id, from_user_id, to_user_id, habit_id, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		encouragement.ID, encouragement.FromUserID, encouragement.ToUserID,
		encouragement.HabitID, encouragement.Message,
	).Scan(&encouragement.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert encouragement: %w", err)
	}
	return nil
}

func (r *encouragementRepository) ListReceived(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Encouragement, error) {
	query := `
		SELECT id, from_user_id, to_user_id, habit_id, message, created_at
		FROM encouragements
		WHERE to_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list encouragements: %w", err)
	}
	defer rows.Close()

	var encouragements []*domain.Encouragement
	for rows.Next() {
		var e domain.Encouragement
		if err := rows.Scan(&e.ID, &e.FromUserID, &e.ToUserID, &e.HabitID, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan encouragement: %w", err)
		}
		encouragements = append(encouragements, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating encouragements: %w", err)
	}
	return encouragements, nil
}
