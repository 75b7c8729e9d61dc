package ports

import (
	"context"
	"time"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type RefreshTokenRepository interface {
	Store(ctx context.Context, token *domain.RefreshToken) error
	// GetByToken returns (nil, nil) when no row matches.
	GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	// Revoke marks the row revoked and reports whether an active row was
	// updated. Revoking an already-revoked token is not an error.
	Revoke(ctx context.Context, token string, revokedAt time.Time, revokedByIP string) (bool, error)
}

// AccessClaims is the verified identity carried by an access token.
type AccessClaims struct {
	UserID    uuid.UUID
	Email     string
	Username  string
	FirstName string
	LastName  string
	IsActive  bool
}

type TokenService interface {
	IssueAccessToken(user *domain.User) (string, error)
	IssueRefreshToken() (string, error)
	ValidateAccessToken(token string) (*AccessClaims, error)
	PersistRefreshToken(ctx context.Context, userID uuid.UUID, token, createdByIP string) error
	ValidateRefreshToken(ctx context.Context, token string, userID uuid.UUID) (bool, error)
	RevokeRefreshToken(ctx context.Context, token, revokedByIP string) (bool, error)
	AccessTokenExpiry() time.Time
}

type RegisterInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
	IP        string
}

type LoginInput struct {
	Email    string
	Password string
	IP       string
}

// AuthResult is what every successful credential exchange returns: the user,
// a signed access token, an opaque refresh token, and the access expiry so
// clients need not decode the JWT to learn it.
type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken, ip string) (*AuthResult, error)
	Logout(ctx context.Context, refreshToken, ip string) error
}
