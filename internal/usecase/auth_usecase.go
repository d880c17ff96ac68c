package usecase

import (
	"context"
	"strings"
	"time"

	"thriftbay/internal/domain/entity"
	"thriftbay/internal/domain/repository"
	"thriftbay/internal/domain/service"
	"thriftbay/internal/infrastructure/auth"
	"thriftbay/pkg/errors"
	"thriftbay/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	revoker  service.TokenRevoker
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	revoker service.TokenRevoker,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		revoker:  revoker,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Type     string
}

type AuthResult struct {
	User   *entity.User
	Token  string
	Claims *auth.Claims
}

// Register creates the account without starting a session.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := entity.NormalizeEmail(input.Email)
	phone := strings.TrimSpace(input.Phone)
	userType := strings.ToLower(strings.TrimSpace(input.Type))

	if name == "" || email == "" || phone == "" || input.Password == "" || userType == "" {
		return nil, errors.Validation("All fields are required")
	}
	if !entity.IsValidUserType(userType) {
		return nil, errors.Validation("Type must be seller or buyer")
	}
	if len(input.Password) < MinPasswordLength {
		return nil, errors.Validation("Password must be at least 6 characters")
	}
	if len(input.Password) > MaxPasswordLength {
		return nil, errors.Validation("Password must be at most 72 bytes")
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.Conflict("Email already registered")
	} else if err != nil && !errors.Is(err, errors.CodeNotFound) {
		return nil, errors.Wrap(err, "Failed to check email")
	}

	hashed, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to secure password", err)
	}

	now := time.Now()
	user := &entity.User{
		Email:            email,
		PasswordHash:     hashed,
		Name:             entity.CapitalizeName(name),
		Phone:            phone,
		Type:             userType,
		Role:             entity.RoleUser,
		PreferredContact: entity.ContactPhone,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// The repository enforces uniqueness atomically; the lookup above only
	// short-circuits the common case.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "Failed to create user record")
	}

	logger.Info("Registered %s user %s", user.Type, user.ID)
	return user, nil
}

// Login answers unknown email and wrong password with the same error.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, errors.Validation("Email and password are required")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.InvalidCredentials()
		}
		return nil, errors.Wrap(err, "Failed to look up user")
	}

	if err := uc.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, errors.InvalidCredentials()
	}

	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		logger.BestEffort("update last login", err, "userId", user.ID)
	} else {
		user.LastLogin = &now
	}

	token, claims, err := uc.tokens.Generate(user.ID, user.Type, user.Email, user.Name)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:   user,
		Token:  token,
		Claims: claims,
	}, nil
}

// Logout always succeeds; revocation only happens when a revocation list is configured.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) {
	if tokenID == "" {
		return
	}
	err := uc.revoker.Revoke(ctx, tokenID, time.Until(expiresAt))
	logger.BestEffort("revoke token on logout", err, "tokenId", tokenID)
}
