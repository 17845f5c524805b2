package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/auth"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/user"
)

type AuthServiceImpl struct {
	user.UserRepository
	auth.SessionRepository
}

func NewAuthService(userRepository user.UserRepository, sessionRepository auth.SessionRepository) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:    userRepository,
		SessionRepository: sessionRepository,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, auth.ErrInvalidCredentials
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)) != nil {
		return user.User{}, auth.ErrInvalidCredentials
	}

	if err := a.SessionRepository.Set(ctx, userData); err != nil {
		return user.User{}, fmt.Errorf("failed to store session: %w", err)
	}

	return userData, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context) error {
	if err := a.SessionRepository.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser implements auth.AuthService.
func (a *AuthServiceImpl) CurrentUser(ctx context.Context) (*user.User, error) {
	current, err := a.SessionRepository.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return current, nil
}
