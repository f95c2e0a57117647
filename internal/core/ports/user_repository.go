package ports

import (
	"context"

	"github.com/oakmont/members-portal/internal/core/domain"
)

// UserRepository defines the interface for credential-store persistence.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, username, role string) error
}
