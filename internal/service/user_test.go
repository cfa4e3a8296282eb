package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecotrack/internal/config"
	"ecotrack/internal/model"
	"ecotrack/pkg/token"
)

func newUserService() (*UserService, *fakeUserRepo) {
	users := &fakeUserRepo{}
	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour},
	}
	return NewUserService(cfg, users), users
}

func TestSignupIssuesToken(t *testing.T) {
	svc, users := newUserService()
	resp, err := svc.Signup(context.Background(), &model.SignupRequest{
		Email: "amina@example.com", Password: "secret123", FullName: "Amina",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if resp.User.Role != model.RoleUser {
		t.Errorf("role = %q, want user", resp.User.Role)
	}
	if users.users[0].Password == "secret123" {
		t.Error("password stored in plaintext")
	}

	userID, err := token.Verify("test-secret", resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if userID != users.users[0].ID {
		t.Error("token subject is not the new user")
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserService()
	req := &model.SignupRequest{Email: "amina@example.com", Password: "secret123", FullName: "Amina"}
	if _, err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("first Signup: %v", err)
	}

	_, err := svc.Signup(context.Background(), req)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second Signup = %v, want ErrEmailTaken", err)
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc, _ := newUserService()
	if _, err := svc.Signup(context.Background(), &model.SignupRequest{
		Email: "amina@example.com", Password: "secret123", FullName: "Amina",
	}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if _, err := svc.Login(context.Background(), &model.LoginRequest{
		Email: "amina@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("Login with correct password: %v", err)
	}

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email: "amina@example.com", Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login with wrong password = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email: "nobody@example.com", Password: "secret123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login for unknown email = %v, want ErrInvalidCredentials", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, users := newUserService()
	if _, err := svc.Signup(context.Background(), &model.SignupRequest{
		Email: "amina@example.com", Password: "secret123", FullName: "Amina",
	}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	updated, err := svc.UpdateProfile(context.Background(), users.users[0].ID, &model.UpdateProfileRequest{
		FullName: "Amina Rahman", Bio: "planting trees in Sylhet",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.FullName != "Amina Rahman" || updated.Bio != "planting trees in Sylhet" {
		t.Error("profile fields not updated")
	}
}
