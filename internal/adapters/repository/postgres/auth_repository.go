package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
)

type AuthRepository struct {
	db *sql.DB
}

func NewAuthRepository(db *sql.DB) ports.RefreshTokenRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) Store(ctx context.Context, token *domain.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at, created_by_ip)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		token.Token, token.UserID, token.ExpiresAt, token.CreatedByIP,
	).Scan(&token.CreatedAt, &token.UpdatedAt)
}

func (r *AuthRepository) GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	query := `
		SELECT token, user_id, expires_at, is_revoked, revoked_at, revoked_by_ip, created_by_ip, created_at, updated_at
		FROM refresh_tokens
		WHERE token = $1
	`
	row := &domain.RefreshToken{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&row.Token,
		&row.UserID,
		&row.ExpiresAt,
		&row.IsRevoked,
		&row.RevokedAt,
		&row.RevokedByIP,
		&row.CreatedByIP,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

// Revoke flips an active row to revoked. Rows are never deleted; expired or
// already-revoked rows are left untouched and the update count reports
// whether anything changed.
func (r *AuthRepository) Revoke(ctx context.Context, token string, revokedAt time.Time, revokedByIP string) (bool, error) {
	query := `
		UPDATE refresh_tokens
		SET is_revoked = true, revoked_at = $2, revoked_by_ip = NULLIF($3, ''), updated_at = NOW()
		WHERE token = $1 AND is_revoked = false
	`
	res, err := r.db.ExecContext(ctx, query, token, revokedAt, revokedByIP)
	if err != nil {
		return false, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
