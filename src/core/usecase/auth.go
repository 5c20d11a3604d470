package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"jokeshare/src/core/domain"
	"jokeshare/src/core/ports"
)

// AuthService verifies credentials and registers users.
// Session handling lives with the HTTP layer in src/app/auth.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	log    *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, log *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		log:    log,
	}
}

// Login checks a username/password pair.
// An unknown username and a wrong password both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.UserSummary, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Compare(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("compare password for user %s: %w", user.ID, err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	return user.Summary(), nil
}

// UserExists reports whether username is already taken.
func (s *AuthService) UserExists(ctx context.Context, username string) (bool, error) {
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	if domain.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

// Register hashes the password and stores a new user.
//
// Callers check UserExists first to show a friendly message. That check is not
// atomic with the insert: two concurrent registrations of the same name can
// both pass it, and the loser gets the store's conflict error here.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.UserSummary, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, username, hash)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", "user_id", user.ID)
	return user.Summary(), nil
}

// GetUser loads the descriptor of the user with the given id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.UserSummary, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Summary(), nil
}
