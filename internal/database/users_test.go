package database

import (
	"context"
	"errors"
	"testing"

	"bank-ledger-go/internal/models"
	"bank-ledger-go/internal/store"
)

func registerTestUser(t *testing.T, service *Service) {
	t.Helper()
	err := service.RegisterUser(context.Background(), "asha", "s3cret-pass", "Your Born Place", "pune")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	registerTestUser(t, service)

	user, err := service.Authenticate(ctx, "asha", "s3cret-pass")
	if err != nil {
		t.Fatalf("Expected successful authentication, got: %v", err)
	}
	if user.Username != "asha" {
		t.Errorf("Expected username asha, got %q", user.Username)
	}

	if _, err := service.Authenticate(ctx, "asha", "wrong"); !errors.Is(err, store.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got: %v", err)
	}

	// Unknown users are indistinguishable from wrong passwords.
	if _, err := service.Authenticate(ctx, "nobody", "s3cret-pass"); !errors.Is(err, store.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got: %v", err)
	}
}

func TestRegisterUser_Duplicate(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	registerTestUser(t, service)

	err := service.RegisterUser(context.Background(), "asha", "other-pass", "Your Pet Name", "rex")
	if !errors.Is(err, store.ErrDuplicateUser) {
		t.Errorf("Expected ErrDuplicateUser, got: %v", err)
	}
}

func TestRegisterUser_MissingFields(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	err := service.RegisterUser(context.Background(), "asha", "s3cret-pass", "Your Born Place", "")
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("Expected validation error, got: %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	registerTestUser(t, service)

	question, err := service.SecurityQuestion(ctx, "asha")
	if err != nil {
		t.Fatalf("SecurityQuestion failed: %v", err)
	}
	if question != "Your Born Place" {
		t.Errorf("Expected stored security question, got %q", question)
	}

	if err := service.ResetPassword(ctx, "asha", "wrong-answer", "new-pass"); !errors.Is(err, store.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong answer, got: %v", err)
	}

	if err := service.ResetPassword(ctx, "asha", "pune", "new-pass"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}

	if _, err := service.Authenticate(ctx, "asha", "new-pass"); err != nil {
		t.Errorf("Expected new password to authenticate, got: %v", err)
	}
	if _, err := service.Authenticate(ctx, "asha", "s3cret-pass"); !errors.Is(err, store.ErrInvalidCredentials) {
		t.Errorf("Expected old password rejected, got: %v", err)
	}
}

func TestSecurityQuestion_UnknownUser(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := service.SecurityQuestion(context.Background(), "nobody")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}
