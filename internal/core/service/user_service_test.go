package service

import (
	"context"
	"testing"

	"github.com/oakmont/members-portal/internal/core/domain"
)

func TestUserService_PromoteDemote_RoundTrip(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{
		{Username: "alice", Email: "a@x.com", UserType: domain.RoleUser},
	}}
	svc := NewUserService(repo)

	if err := svc.Promote(context.Background(), "alice"); err != nil {
		t.Fatalf("promote failed: %v", err)
	}
	if repo.users[0].UserType != domain.RoleAdmin {
		t.Fatalf("expected admin after promote, got %q", repo.users[0].UserType)
	}

	if err := svc.Demote(context.Background(), "alice"); err != nil {
		t.Fatalf("demote failed: %v", err)
	}
	if repo.users[0].UserType != domain.RoleUser {
		t.Fatalf("expected user after demote, got %q", repo.users[0].UserType)
	}
}

func TestUserService_Promote_UnknownUser(t *testing.T) {
	svc := NewUserService(&stubUserRepo{})

	if err := svc.Promote(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.Promote(context.Background(), ""); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound for empty username, got %v", err)
	}
}

func TestUserService_List(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{
		{Username: "alice", UserType: domain.RoleAdmin},
		{Username: "bob", UserType: domain.RoleUser},
	}}
	svc := NewUserService(repo)

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
