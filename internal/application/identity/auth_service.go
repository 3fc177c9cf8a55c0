package identity

import (
	"context"
	"errors"
	"time"

	"github.com/glosas/backend/internal/domain/identity"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned on any failed login attempt. Unknown
// email and wrong password produce the same error so callers cannot probe
// which accounts exist.
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")

// AuthService handles authentication operations
type AuthService struct {
	userRepo  identity.UserRepository
	jwt       *auth.JWTService
	blacklist auth.TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwt *auth.JWTService, blacklist auth.TokenBlacklist, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwt:       jwt,
		blacklist: blacklist,
		logger:    logger,
	}
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		s.logger.Warn("login attempt for inactive account", zap.String("email", user.Email))
		return nil, ErrInvalidCredentials
	}
	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("failed login attempt", zap.String("email", user.Email))
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.jwt.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	user.RecordLogin(time.Now())
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Warn("failed to record login time", zap.Error(err))
	}

	return &LoginResponse{
		Tokens: tokens,
		User:   ToUserResponse(user),
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*LoginResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, shared.ErrUnauthorized
	}

	userID, err := claims.ParsedUserID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}
	if !user.Active {
		return nil, shared.ErrUnauthorized
	}

	// One refresh token, one use
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.RemainingTTL()); err != nil {
		s.logger.Warn("failed to blacklist used refresh token", zap.Error(err))
	}

	tokens, err := s.jwt.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Tokens: tokens,
		User:   ToUserResponse(user),
	}, nil
}

// Logout revokes the presented access token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwt.ValidateAccessToken(accessToken)
	if err != nil {
		return shared.ErrUnauthorized
	}
	return s.blacklist.AddToBlacklist(ctx, claims.ID, claims.RemainingTTL())
}
