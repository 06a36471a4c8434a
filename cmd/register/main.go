package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"bank-ledger-go/internal/common"
	"bank-ledger-go/internal/config"
	"bank-ledger-go/internal/database"
	"bank-ledger-go/internal/store"

	"go.uber.org/zap"
)

func registerUser(ctx context.Context, dbService *database.Service, username, password, question, answer string) error {
	if err := dbService.RegisterUser(ctx, username, password, question, answer); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			return fmt.Errorf("username %q is already taken", username)
		}
		return err
	}
	fmt.Printf("User %s registered\n", username)
	return nil
}

func login(ctx context.Context, dbService *database.Service, username, password string) error {
	user, err := dbService.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return fmt.Errorf("invalid username or password")
		}
		return err
	}
	fmt.Printf("Welcome %s\n", user.Username)
	return nil
}

func resetPassword(ctx context.Context, dbService *database.Service, username, answer, newPassword string) error {
	question, err := dbService.SecurityQuestion(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("unknown user %q", username)
		}
		return err
	}
	fmt.Printf("Security question: %s\n", question)

	if answer == "" {
		return fmt.Errorf("provide -answer to reset the password")
	}
	if err := dbService.ResetPassword(ctx, username, answer, newPassword); err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return fmt.Errorf("security answer does not match")
		}
		return err
	}
	fmt.Printf("Password updated for %s\n", username)
	return nil
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	usernameFlag := flag.String("username", "", "Username (required)")
	passwordFlag := flag.String("password", "", "Password for registration or login")
	questionFlag := flag.String("question", "", "Security question for registration")
	answerFlag := flag.String("answer", "", "Security answer (registration or password reset)")
	loginFlag := flag.Bool("login", false, "Verify credentials instead of registering")
	newPasswordFlag := flag.String("new-password", "", "Reset the password using the security answer")
	flag.Parse()

	if *usernameFlag == "" {
		logger.Fatal("Missing required -username flag")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	dbService, err := common.InitializeDatabaseOnly(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer dbService.Close()

	switch {
	case *loginFlag:
		err = login(ctx, dbService, *usernameFlag, *passwordFlag)
	case *newPasswordFlag != "":
		err = resetPassword(ctx, dbService, *usernameFlag, *answerFlag, *newPasswordFlag)
	default:
		err = registerUser(ctx, dbService, *usernameFlag, *passwordFlag, *questionFlag, *answerFlag)
	}
	if err != nil {
		logger.Fatal("Operation failed", zap.String("username", *usernameFlag), zap.Error(err))
	}
}
