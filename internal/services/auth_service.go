package services

import (
	"context"
	"strings"
	"time"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/bwsolucoes/carteira-api/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles user registration and credential checks. Session
// issuance lives in the handler layer; this service only deals with users.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a user with a bcrypt password hash
func (s *AuthService) Register(ctx context.Context, username, password, confirm string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, &ValidationError{Message: "Username and password are required."}
	}
	if password != confirm {
		return nil, &ValidationError{Message: "Passwords do not match."}
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, &ValidationError{Message: "Username already exists."}
	} else if err != repository.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. Lookup misses and bad passwords produce the
// same message so usernames cannot be probed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if err == repository.ErrRecordNotFound {
			return nil, &ValidationError{Message: "Invalid username or password."}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, &ValidationError{Message: "Invalid username or password."}
	}
	return user, nil
}
