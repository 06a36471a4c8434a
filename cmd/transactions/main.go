package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"bank-ledger-go/internal/common"
	"bank-ledger-go/internal/config"
	"bank-ledger-go/internal/models"
	"bank-ledger-go/internal/report"
	"bank-ledger-go/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type fieldFlags struct {
	name    *string
	account *string
	ifsc    *string
	mobile  *string
	address *string
	txnNo   *string
	txnType *string
	mode    *string
	bank    *string
	amount  *string
}

func (f fieldFlags) input() (models.TransactionInput, error) {
	amount := decimal.Zero
	if *f.amount != "" {
		parsed, err := decimal.NewFromString(*f.amount)
		if err != nil {
			return models.TransactionInput{}, fmt.Errorf("invalid amount %q: %w", *f.amount, err)
		}
		amount = parsed
	}

	return models.TransactionInput{
		CustomerName:  *f.name,
		AccountNumber: *f.account,
		IFSCCode:      *f.ifsc,
		Mobile:        *f.mobile,
		Address:       *f.address,
		TransactionNo: *f.txnNo,
		Type:          models.TransactionType(*f.txnType),
		Mode:          models.TransactionMode(*f.mode),
		BankName:      *f.bank,
		Amount:        amount,
	}, nil
}

func printTransaction(txn *models.Transaction, currency string) {
	fmt.Printf("Sr No:          %d\n", txn.SrNo)
	fmt.Printf("Date:           %s\n", txn.Date.Format(models.TimeLayout))
	fmt.Printf("Customer:       %s\n", txn.CustomerName)
	fmt.Printf("Account:        %s\n", txn.AccountNumber)
	fmt.Printf("IFSC:           %s\n", txn.IFSCCode)
	fmt.Printf("Mobile:         %s\n", txn.Mobile)
	fmt.Printf("Address:        %s\n", txn.Address)
	fmt.Printf("Transaction No: %s\n", txn.TransactionNo)
	fmt.Printf("Type / Mode:    %s / %s\n", txn.Type, txn.Mode)
	if txn.BankName != "" {
		fmt.Printf("Bank:           %s\n", txn.BankName)
	}
	fmt.Printf("Amount:         %s\n", common.FormatAmount(currency, txn.Amount))
}

func reportUserError(logger *zap.Logger, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		fmt.Printf("Rejected: %s\n", vErr)
	case errors.Is(err, store.ErrNotFound):
		fmt.Printf("Not found: %s\n", err)
	default:
		logger.Error("Operation failed", zap.Error(err))
		fmt.Printf("Error: %s\n", err)
	}
	os.Exit(1)
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	addFlag := flag.Bool("add", false, "Record a new transaction")
	editFlag := flag.Int64("edit", 0, "Replace the transaction with the given serial number")
	deleteFlag := flag.Int64("delete", 0, "Delete the transaction with the given serial number")
	getFlag := flag.Int64("get", 0, "Show the transaction with the given serial number")
	listFlag := flag.Bool("list", false, "List transactions")
	fromFlag := flag.String("from", "", "Range start YYYY-MM-DD (with -list)")
	toFlag := flag.String("to", "", "Range end YYYY-MM-DD (with -list)")

	fields := fieldFlags{
		name:    flag.String("name", "", "Customer name"),
		account: flag.String("account", "", "Account number"),
		ifsc:    flag.String("ifsc", "", "IFSC code"),
		mobile:  flag.String("mobile", "", "Mobile number"),
		address: flag.String("address", "", "Address (optional)"),
		txnNo:   flag.String("txn-no", "", "Transaction number (generated when empty)"),
		txnType: flag.String("type", "", "Transaction type: Deposit or Withdrawal"),
		mode:    flag.String("mode", "", "Transaction mode: Cash or Bank"),
		bank:    flag.String("bank", "", "Bank name (required for bank mode)"),
		amount:  flag.String("amount", "", "Transaction amount"),
	}
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

	currency := services.Profile.Currency

	switch {
	case *addFlag:
		in, err := fields.input()
		if err != nil {
			reportUserError(logger, err)
		}
		txn, err := services.DbService.InsertTransaction(ctx, in)
		if err != nil {
			reportUserError(logger, err)
		}
		common.PrintHeader("TRANSACTION RECORDED", common.DefaultWidth)
		printTransaction(txn, currency)

	case *editFlag > 0:
		in, err := fields.input()
		if err != nil {
			reportUserError(logger, err)
		}
		txn, err := services.DbService.UpdateTransaction(ctx, *editFlag, in)
		if err != nil {
			reportUserError(logger, err)
		}
		common.PrintHeader("TRANSACTION UPDATED", common.DefaultWidth)
		printTransaction(txn, currency)

	case *deleteFlag > 0:
		if err := services.DbService.DeleteTransaction(ctx, *deleteFlag); err != nil {
			reportUserError(logger, err)
		}
		fmt.Printf("Transaction %d deleted; balances restored\n", *deleteFlag)

	case *getFlag > 0:
		txn, err := services.DbService.GetTransaction(ctx, *getFlag)
		if err != nil {
			reportUserError(logger, err)
		}
		printTransaction(txn, currency)

	case *listFlag:
		common.PrintHeader("TRANSACTIONS", common.DefaultWidth)
		renderer := report.NewRenderer(services.DbService, services.Profile, os.Stdout)
		if err := renderer.Detailed(ctx, *fromFlag, *toFlag); err != nil {
			reportUserError(logger, err)
		}

	default:
		fmt.Println("Specify one of -add, -edit, -delete, -get or -list")
		flag.Usage()
		os.Exit(2)
	}
}
