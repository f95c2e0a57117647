package ports

import (
	"context"

	"github.com/oakmont/members-portal/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Promote(ctx context.Context, username string) error
	Demote(ctx context.Context, username string) error
}
