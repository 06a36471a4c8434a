package main

import (
	"context"
	"flag"
	"os"

	"bank-ledger-go/internal/common"
	"bank-ledger-go/internal/config"
	"bank-ledger-go/internal/report"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	flag.Parse()

	logger.Info("Starting balance query")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Connecting to database", zap.String("path", cfg.Database.Path))
	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	common.PrintHeader("BALANCE SUMMARY", common.DefaultWidth)

	renderer := report.NewRenderer(services.DbService, services.Profile, os.Stdout)
	if err := renderer.BalanceSummary(ctx); err != nil {
		logger.Fatal("Failed to render balance summary", zap.Error(err))
	}

	common.PrintFooter(services.Profile.Organisation, common.DefaultWidth)

	logger.Info("Balance query completed")
}
