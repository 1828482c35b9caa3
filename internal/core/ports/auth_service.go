package ports

import (
	"context"

	"github.com/conexa/starwars-api/internal/core/domain"
)

// RegisterResult is returned after a successful registration.
type RegisterResult struct {
	Message string
	UserID  string
}

// LoginResult carries the issued access token.
type LoginResult struct {
	AccessToken string
}

// AuthService orchestrates registration, login, and user reads.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// EnsureAdmin seeds the bootstrap admin account when no admin exists yet.
	EnsureAdmin(ctx context.Context) error
}
