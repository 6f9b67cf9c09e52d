package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/plainlearn/plainlearn/internal/domain"
)

// AuthService handles registration and credential checks against the
// user store.
type AuthService struct {
	users domain.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new user account after validating inputs.
// A duplicate email surfaces as domain.ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, name, email, password, level string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" || level == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrInvalidInput)
	}

	parsedLevel, err := domain.ParseAcademicLevel(level)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: HashPassword(password),
		Level:        parsedLevel,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the email/password pair and returns the matching user.
// Unknown email and wrong password both yield ErrInvalidCredentials so
// the response cannot reveal which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// UpdateLevel persists a new academic level for the user. The level is
// validated against the enumeration before it touches the store.
func (s *AuthService) UpdateLevel(ctx context.Context, userID int64, level string) (domain.AcademicLevel, error) {
	parsed, err := domain.ParseAcademicLevel(level)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdateLevel(ctx, userID, parsed); err != nil {
		return "", fmt.Errorf("update level: %w", err)
	}
	return parsed, nil
}
