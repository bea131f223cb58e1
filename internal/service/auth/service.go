package auth_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inkwell-blog-service/internal/custom_errors"
	"inkwell-blog-service/internal/logger"
	"inkwell-blog-service/internal/model"
	user_repository "inkwell-blog-service/internal/repository/user"
)

type AuthService struct {
	userRepo   user_repository.Repository
	log        *logger.Logger
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(userRepo user_repository.Repository, log *logger.Logger, secret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:   userRepo,
		log:        log,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// NormalizeEmail trims surrounding whitespace and lowercases the address so
// email uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, dto *model.RegisterUserDTO) (*model.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, "", err
	}

	newUser := &model.User{
		Email:        NormalizeEmail(dto.Email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(dto.Name),
	}

	createdUser, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, custom_errors.ErrEmailExists) {
			s.log.Debug("Email already registered", slog.String("email", newUser.Email))
			return nil, "", custom_errors.ErrEmailExists
		}
		s.log.Error("Failed to create user", slog.String("error", err.Error()))
		return nil, "", custom_errors.ErrDatabaseQuery
	}

	token, err := s.issueToken(createdUser)
	if err != nil {
		s.log.Error("Failed to issue token", slog.String("error", err.Error()), slog.Int64("userID", createdUser.ID))
		return nil, "", err
	}

	return createdUser, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			// same failure as a wrong password, to avoid user enumeration
			s.log.Debug("Login attempt for unknown email")
			return nil, "", custom_errors.ErrInvalidCredentials
		}
		s.log.Error("Failed to get user by email", slog.String("error", err.Error()))
		return nil, "", custom_errors.ErrDatabaseQuery
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Debug("Password mismatch", slog.Int64("userID", user.ID))
		return nil, "", custom_errors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to issue token", slog.String("error", err.Error()), slog.Int64("userID", user.ID))
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			// the token may outlive the account, tokens are never revoked
			s.log.Debug("Profile requested for missing user", slog.Int64("userID", userID))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get user by id", slog.String("error", err.Error()), slog.Int64("userID", userID))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}
