package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/oakmont/members-portal/internal/core/domain"
)

type stubUserRepo struct {
	users []domain.User
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	stored := *user
	stored.ID = "id_" + stored.Username
	r.users = append(r.users, stored)
	return &stored, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), r.users...), nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, username, role string) error {
	for i := range r.users {
		if r.users[i].Username == username {
			r.users[i].UserType = role
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func TestAuthService_SignUp_Success(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo)

	user, err := svc.SignUp(context.Background(), "alice", "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if user.UserType != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.UserType)
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestAuthService_SignUp_EmptyFields(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo)

	if _, err := svc.SignUp(context.Background(), "", "a@x.com", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected no insert, got %d users", len(repo.users))
	}
}

func TestAuthService_SignUp_NoUniquenessCheck(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo)

	if _, err := svc.SignUp(context.Background(), "bob", "b@x.com", "pw"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	// Duplicate email is accepted: uniqueness is not enforced at signup.
	if _, err := svc.SignUp(context.Background(), "bob", "b@x.com", "pw2"); err != nil {
		t.Fatalf("duplicate signup failed: %v", err)
	}
	if len(repo.users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(repo.users))
	}
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo)

	if _, err := svc.SignUp(context.Background(), "carol", "carol@x.com", "s3cret"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, err := svc.Login(context.Background(), "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo)

	_, _ = svc.SignUp(context.Background(), "dave", "dave@x.com", "goodpass")
	if _, err := svc.Login(context.Background(), "dave@x.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo)

	// Unknown email and wrong password are indistinguishable to the caller.
	if _, err := svc.Login(context.Background(), "ghost@x.com", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
