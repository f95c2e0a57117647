package service

import (
	"context"

	"github.com/oakmont/members-portal/internal/core/domain"
	"github.com/oakmont/members-portal/internal/core/ports"
)

// UserService implements the admin operations over the credential store.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List returns every user. Full collection scan; fine at portal scale.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Promote sets the user's role to admin. No audit trail and no guard
// against promoting an already-admin user; the update is idempotent.
func (s *UserService) Promote(ctx context.Context, username string) error {
	if username == "" {
		return domain.ErrUserNotFound
	}
	return s.repo.UpdateRole(ctx, username, domain.RoleAdmin)
}

// Demote sets the user's role back to user. Nothing stops an admin from
// demoting themself or the last remaining admin.
func (s *UserService) Demote(ctx context.Context, username string) error {
	if username == "" {
		return domain.ErrUserNotFound
	}
	return s.repo.UpdateRole(ctx, username, domain.RoleUser)
}
