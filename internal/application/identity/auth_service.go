package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stylesphere/storefront/internal/domain/identity"
	"github.com/stylesphere/storefront/internal/domain/shared"
	"github.com/stylesphere/storefront/internal/infrastructure/auth"
)

// AuthService handles registration, authentication and profile operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Register creates a new user account and logs it in
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*LoginResult, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "Email already registered")
	}

	exists, err = s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("USERNAME_TAKEN", "Username already taken")
	}

	user, err := identity.NewUser(input.Username, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	if input.FullName != "" {
		if err := user.SetFullName(input.FullName); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return s.issueToken(user)
}

// Login authenticates a user by email and password.
// Unknown email and wrong password are indistinguishable to the caller
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("login attempt for unknown email")
		return nil, shared.ErrInvalidCredentials
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, shared.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// Logout revokes the presented token by blacklisting its JTI until expiry
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("failed to blacklist token", zap.Error(err))
		return shared.NewDomainError("LOGOUT_FAILED", "Failed to log out")
	}

	s.logger.Info("user logged out", zap.String("user_id", claims.UserID))
	return nil
}

// GetProfile returns the profile of the given user
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// UpdateProfile applies profile changes, re-checking email uniqueness
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		taken, err := s.userRepo.ExistsByEmailExcluding(ctx, *input.Email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewDomainError("EMAIL_TAKEN", "Email already registered")
		}
		if err := user.ChangeEmail(*input.Email); err != nil {
			return nil, err
		}
	}

	if input.FullName != nil {
		if err := user.SetFullName(*input.FullName); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

func (s *AuthService) issueToken(user *identity.User) (*LoginResult, error) {
	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		s.logger.Error("failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	return &LoginResult{
		Token:     token.AccessToken,
		ExpiresAt: token.ExpiresAt,
		User:      ToUserResponse(user),
	}, nil
}
