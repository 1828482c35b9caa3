package ports

import (
	"context"

	"github.com/conexa/starwars-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
// Lookups that miss return domain.ErrUserNotFound; Create returns
// domain.ErrUserExists when the unique email constraint fires.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindFirstByRole(ctx context.Context, role string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
