package ports

import (
	"context"

	"github.com/oakmont/members-portal/internal/core/domain"
)

type AuthService interface {
	SignUp(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}
