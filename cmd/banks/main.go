package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"bank-ledger-go/internal/common"
	"bank-ledger-go/internal/config"
	"bank-ledger-go/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	upsertFlag := flag.String("upsert", "", "Bank name to create or overwrite (use with -balance)")
	balanceFlag := flag.String("balance", "0", "Balance for -upsert")
	deleteFlag := flag.String("delete", "", "Bank name to remove")
	listFlag := flag.Bool("list", false, "List banks and balances")
	setCashFlag := flag.String("set-cash", "", "Overwrite the cash balance")
	resetCashFlag := flag.Bool("reset-cash", false, "Set the cash balance to zero")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	dbService := services.DbService
	currency := services.Profile.Currency

	switch {
	case *upsertFlag != "":
		balance, err := decimal.NewFromString(*balanceFlag)
		if err != nil {
			logger.Fatal("Invalid balance", zap.String("value", *balanceFlag), zap.Error(err))
		}
		if err := dbService.UpsertBank(ctx, *upsertFlag, balance); err != nil {
			logger.Fatal("Failed to save bank", zap.String("bank", *upsertFlag), zap.Error(err))
		}
		fmt.Printf("Bank %s saved with balance %s\n", *upsertFlag, common.FormatAmount(currency, balance))

	case *deleteFlag != "":
		if err := dbService.DeleteBank(ctx, *deleteFlag); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Printf("No bank named %q\n", *deleteFlag)
				os.Exit(1)
			}
			logger.Fatal("Failed to delete bank", zap.String("bank", *deleteFlag), zap.Error(err))
		}
		fmt.Printf("Bank %s removed\n", *deleteFlag)

	case *setCashFlag != "":
		value, err := decimal.NewFromString(*setCashFlag)
		if err != nil {
			logger.Fatal("Invalid cash amount", zap.String("value", *setCashFlag), zap.Error(err))
		}
		if err := dbService.SetCash(ctx, value); err != nil {
			logger.Fatal("Failed to set cash balance", zap.Error(err))
		}
		fmt.Printf("Cash balance set to %s\n", common.FormatAmount(currency, value))

	case *resetCashFlag:
		if err := dbService.SetCash(ctx, decimal.Zero); err != nil {
			logger.Fatal("Failed to reset cash balance", zap.Error(err))
		}
		fmt.Println("Cash balance reset to zero")

	case *listFlag:
		banks, err := dbService.ListBanks(ctx)
		if err != nil {
			logger.Fatal("Failed to list banks", zap.Error(err))
		}
		cash, err := dbService.GetCash(ctx)
		if err != nil {
			logger.Fatal("Failed to read cash balance", zap.Error(err))
		}

		common.PrintHeader("FUNDING SOURCES", common.DefaultWidth)
		fmt.Printf("%-28s %s\n", "Cash in Hand:", common.FormatAmount(currency, cash))
		for i, bank := range banks {
			prefix := common.BoxPrefix(i == len(banks)-1)
			fmt.Printf("%s%-25s %s\n", prefix, bank.BankName+":", common.FormatAmount(currency, bank.Balance))
		}
		common.PrintFooter(fmt.Sprintf("%d banks registered", len(banks)), common.DefaultWidth)

	default:
		fmt.Println("Specify one of -upsert, -delete, -list, -set-cash or -reset-cash")
		flag.Usage()
		os.Exit(2)
	}
}
