package services

import (
	"context"
	"errors"
	"testing"

	"minutely/internal/models/request_models"
	"minutely/pkg/utils"
)

func TestCreateAccountAndLogin(t *testing.T) {
	repo := newMockAccountRepo()
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Priya Sharma",
		Email:       "priya@example.com",
		Password:    "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	stored, _ := repo.FindByEmail(context.Background(), "priya@example.com")
	if stored == nil {
		t.Fatal("account not persisted")
	}
	if stored.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in plain text")
	}
	if stored.Role != "user" {
		t.Fatalf("role = %q, want user", stored.Role)
	}

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "priya@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned an empty token")
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newMockAccountRepo()
	svc := NewAccountService(repo)
	req := request_models.SignUpRequest{
		DisplayName: "Priya Sharma",
		Email:       "priya@example.com",
		Password:    "s3cret-pass",
	}

	if err := svc.CreateAccount(context.Background(), req); err != nil {
		t.Fatalf("first CreateAccount: %v", err)
	}
	err := svc.CreateAccount(context.Background(), req)
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newMockAccountRepo()
	svc := NewAccountService(repo)

	if err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Priya Sharma",
		Email:       "priya@example.com",
		Password:    "s3cret-pass",
	}); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "priya@example.com",
		Password: "wrong-pass",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("wrong password: error = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Fatalf("unknown email: error = %v, want ErrAccountNotFound", err)
	}
}
