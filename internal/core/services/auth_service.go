package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/BG-legacy/HabitChain-sub001/internal/core/domain"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/ports"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  ports.UserRepository
	tokenRepo ports.RefreshTokenRepository
	tokens    ports.TokenService
}

func NewAuthService(userRepo ports.UserRepository, tokenRepo ports.RefreshTokenRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.TrimSpace(input.Username)

	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}

	if existing, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return nil, domain.ErrDuplicateUser
	}
	if existing, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if existing != nil {
		return nil, domain.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issuePair(ctx, user, input.IP)
}

// Login verifies credentials and returns a fresh token pair. Unknown email
// and wrong password both come back as ErrUnauthorized so account existence
// is not leaked.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}

	return s.issuePair(ctx, user, input.IP)
}

// Refresh exchanges a stored refresh token for a new pair, revoking the old
// token first. A revoked, expired, or unknown token is an ErrUnauthorized.
func (s *AuthService) Refresh(ctx context.Context, refreshToken, ip string) (*ports.AuthResult, error) {
	row, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if row == nil {
		return nil, domain.ErrUnauthorized
	}

	ok, err := s.tokens.ValidateRefreshToken(ctx, refreshToken, row.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, row.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}

	// Rotation: the old token must be dead before the new one goes out.
	if _, err := s.tokens.RevokeRefreshToken(ctx, refreshToken, ip); err != nil {
		return nil, err
	}

	return s.issuePair(ctx, user, ip)
}

// Logout revokes the refresh token. Revoking an unknown or already-revoked
// token is not an error.
func (s *AuthService) Logout(ctx context.Context, refreshToken, ip string) error {
	_, err := s.tokens.RevokeRefreshToken(ctx, refreshToken, ip)
	return err
}

func (s *AuthService) issuePair(ctx context.Context, user *domain.User, ip string) (*ports.AuthResult, error) {
	access, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}
	if err := s.tokens.PersistRefreshToken(ctx, user.ID, refresh, ip); err != nil {
		return nil, err
	}

	return &ports.AuthResult{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    s.tokens.AccessTokenExpiry(),
	}, nil
}
