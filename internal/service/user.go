package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campushq-id/bootcamp-api/internal/dto"
	apperrors "github.com/campushq-id/bootcamp-api/internal/errors"
	"github.com/campushq-id/bootcamp-api/internal/model"
	"github.com/campushq-id/bootcamp-api/pkg/ctxutil"
	"github.com/campushq-id/bootcamp-api/pkg/logger"
)

type UserService struct {
	users      UserStore
	jwtService *JWTService
}

func NewUserService(users UserStore, jwtService *JWTService) *UserService {
	return &UserService{
		users:      users,
		jwtService: jwtService,
	}
}

// Register creates a user with a hashed password and issues a signed token.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (string, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Register")

	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		logger.WarnWithContext(ctx, "Registration rejected, email taken").
			String("email", email).
			Log()
		return "", apperrors.ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	user := &model.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hashedPassword),
		Role:     "user",
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "User registered").
		Uint("user_id", user.ID).
		String("email", user.Email).
		Log()
	return token, nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password produce the same error so account existence never leaks.
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Login")

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.InfoWithContext(ctx, "Login failed, unknown email").
				String("email", email).
				Log()
			return "", apperrors.ErrInvalidCredentials
		}
		return "", apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnWithContext(ctx, "Login failed, wrong password").
			Uint("user_id", user.ID).
			Log()
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "User logged in").
		Uint("user_id", user.ID).
		Log()
	return token, nil
}

// GetByID returns the profile of an authenticated user.
func (s *UserService) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetByID")

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}
