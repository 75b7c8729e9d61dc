package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type accessTokenClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	IsActive  bool   `json:"active"`
}

// TokenService manages the credential lifecycle: signed access tokens and
// store-backed opaque refresh tokens.
type TokenService struct {
	tokens     ports.RefreshTokenRepository
	secret     []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenService fails when secret, issuer, or audience is empty. Callers
// treat that as a configuration error and abort startup.
func NewTokenService(tokens ports.RefreshTokenRepository, secret, issuer, audience string, accessTTL, refreshTTL time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: signing secret is not configured")
	}
	if issuer == "" {
		return nil, errors.New("token service: issuer is not configured")
	}
	if audience == "" {
		return nil, errors.New("token service: audience is not configured")
	}
	if accessTTL <= 0 {
		accessTTL = 60 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{
		tokens:     tokens,
		secret:     []byte(secret),
		issuer:     issuer,
		audience:   audience,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

func (s *TokenService) IssueAccessToken(user *domain.User) (string, error) {
	now := s.now()
	claims := accessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsActive:  user.IsActive,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) IssueRefreshToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

// ValidateAccessToken verifies signature, issuer, audience, and expiry with
// zero clock-skew tolerance. Any failure, malformed input included, comes
// back as domain.ErrInvalidToken.
func (s *TokenService) ValidateAccessToken(token string) (*ports.AccessClaims, error) {
	claims := &accessTokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	return &ports.AccessClaims{
		UserID:    userID,
		Email:     claims.Email,
		Username:  claims.Username,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsActive:  claims.IsActive,
	}, nil
}

func (s *TokenService) PersistRefreshToken(ctx context.Context, userID uuid.UUID, token, createdByIP string) error {
	now := s.now()
	row := &domain.RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(s.refreshTTL),
		CreatedAt: now,
	}
	if createdByIP != "" {
		row.CreatedByIP = &createdByIP
	}
	if err := s.tokens.Store(ctx, row); err != nil {
		slog.ErrorContext(ctx, "failed to persist refresh token", "user_id", userID, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// ValidateRefreshToken reports whether an unrevoked, unexpired row exists for
// the exact (token, userID) pair.
func (s *TokenService) ValidateRefreshToken(ctx context.Context, token string, userID uuid.UUID) (bool, error) {
	row, err := s.tokens.GetByToken(ctx, token)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if row == nil || row.UserID != userID {
		return false, nil
	}
	return row.Active(s.now()), nil
}

// RevokeRefreshToken finds the row by token value regardless of owner and
// marks it revoked. Returns false when no active row matched, so a second
// revocation of the same token is a safe no-op.
func (s *TokenService) RevokeRefreshToken(ctx context.Context, token, revokedByIP string) (bool, error) {
	revoked, err := s.tokens.Revoke(ctx, token, s.now(), revokedByIP)
	if err != nil {
		slog.ErrorContext(ctx, "failed to revoke refresh token", "error", err)
		return false, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return revoked, nil
}

// AccessTokenExpiry reports when a token issued now would expire, so callers
// can surface the expiry without re-deriving it from the JWT.
func (s *TokenService) AccessTokenExpiry() time.Time {
	return s.now().Add(s.accessTTL)
}
