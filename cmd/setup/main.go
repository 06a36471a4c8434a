package main

import (
	"context"
	"flag"
	"fmt"

	"bank-ledger-go/internal/common"
	"bank-ledger-go/internal/config"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	cashFlag := flag.String("cash", "", "Optional opening cash balance to set after setup")
	flag.Parse()

	logger.Info("Starting ledger setup")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Opening the service creates the database file and runs migrations.
	logger.Info("Connecting to database", zap.String("path", cfg.Database.Path))
	dbService, err := common.InitializeDatabaseOnly(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer dbService.Close()

	common.PrintHeader("LEDGER SETUP", common.DefaultWidth)
	fmt.Printf("Database ready at %s\n", cfg.Database.Path)

	if *cashFlag != "" {
		opening, err := decimal.NewFromString(*cashFlag)
		if err != nil {
			logger.Fatal("Invalid opening cash amount", zap.String("value", *cashFlag), zap.Error(err))
		}
		if err := dbService.SetCash(ctx, opening); err != nil {
			logger.Fatal("Failed to set opening cash", zap.Error(err))
		}
		fmt.Printf("Opening cash balance set to %s\n", opening.StringFixed(2))
	}

	cash, err := dbService.GetCash(ctx)
	if err != nil {
		logger.Fatal("Failed to read cash balance", zap.Error(err))
	}
	banks, err := dbService.ListBanks(ctx)
	if err != nil {
		logger.Fatal("Failed to list banks", zap.Error(err))
	}

	summary := fmt.Sprintf("SETUP COMPLETE: cash %s, %d banks registered", cash.StringFixed(2), len(banks))
	common.PrintFooter(summary, common.DefaultWidth)

	logger.Info("Ledger setup completed",
		zap.String("cash", cash.String()),
		zap.Int("banks", len(banks)))
}
