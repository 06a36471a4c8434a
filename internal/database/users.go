package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bank-ledger-go/internal/models"
	"bank-ledger-go/internal/store"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates an operator account. Password and security answer
// are bcrypt-hashed before they touch the database.
func (s *Service) RegisterUser(ctx context.Context, username, password, question, answer string) error {
	if username == "" || password == "" || question == "" || answer == "" {
		return &models.ValidationError{Field: "registration", Reason: "all fields are required"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	hashedAnswer, err := bcrypt.GenerateFromPassword([]byte(answer), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash security answer: %w", err)
	}

	_, err = s.db.ExecContext(ctx, queryInsertUser, username, string(hashedPassword), question, string(hashedAnswer))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("user %q: %w", username, store.ErrDuplicateUser)
		}
		return fmt.Errorf("unable to insert user: %w", err)
	}

	zap.L().Info("User registered", zap.String("username", username))
	return nil
}

// Authenticate verifies the password for a username. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, store.ErrInvalidCredentials
	}

	zap.L().Info("User authenticated", zap.String("username", username))
	return user, nil
}

// SecurityQuestion returns the recovery question for a username.
func (s *Service) SecurityQuestion(ctx context.Context, username string) (string, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	return user.SecurityQuestion, nil
}

// ResetPassword overwrites the password after verifying the security
// answer.
func (s *Service) ResetPassword(ctx context.Context, username, answer, newPassword string) error {
	if username == "" || answer == "" || newPassword == "" {
		return &models.ValidationError{Field: "password reset", Reason: "all fields are required"}
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SecurityAnswer), []byte(answer)); err != nil {
		return store.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, queryUpdateUserPassword, string(hashedPassword), username); err != nil {
		return fmt.Errorf("unable to update password: %w", err)
	}

	zap.L().Info("Password reset", zap.String("username", username))
	return nil
}

func (s *Service) getUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, queryGetUser, username).Scan(
		&user.Username, &user.Password, &user.SecurityQuestion, &user.SecurityAnswer)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", username, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to query user: %w", err)
	}
	return &user, nil
}
