package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bank-ledger-go/internal/common"
	"bank-ledger-go/internal/config"
	"bank-ledger-go/internal/export"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	formatFlag := flag.String("format", "csv", "Export format: csv, xlsx, pdf, chart or receipt")
	outFlag := flag.String("out", "", "Output file path (required except for -import)")
	srNoFlag := flag.Int64("sr-no", 0, "Transaction serial number (receipt format)")
	fromFlag := flag.String("from", "", "Range start YYYY-MM-DD (optional)")
	toFlag := flag.String("to", "", "Range end YYYY-MM-DD (optional)")
	importFlag := flag.String("import", "", "CSV file to import instead of exporting")
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

	if *importFlag != "" {
		file, err := os.Open(*importFlag)
		if err != nil {
			logger.Fatal("Failed to open import file", zap.String("path", *importFlag), zap.Error(err))
		}
		defer file.Close()

		count, err := export.ImportCSV(ctx, dbService, file)
		if err != nil {
			logger.Fatal("Import failed", zap.String("path", *importFlag), zap.Error(err))
		}
		fmt.Printf("Imported %d transactions from %s\n", count, *importFlag)
		return
	}

	if *outFlag == "" {
		fmt.Println("Missing required -out flag")
		flag.Usage()
		os.Exit(2)
	}

	switch *formatFlag {
	case "csv", "xlsx", "pdf":
		transactions, err := dbService.ListTransactions(ctx, *fromFlag, *toFlag)
		if err != nil {
			logger.Fatal("Failed to load transactions", zap.Error(err))
		}

		switch *formatFlag {
		case "csv":
			file, err := os.Create(*outFlag)
			if err != nil {
				logger.Fatal("Failed to create output file", zap.String("path", *outFlag), zap.Error(err))
			}
			defer file.Close()
			err = export.ExportCSV(file, transactions)
			if err != nil {
				logger.Fatal("Export failed", zap.Error(err))
			}
		case "xlsx":
			if err := export.ExportXLSX(*outFlag, transactions); err != nil {
				logger.Fatal("Export failed", zap.Error(err))
			}
		case "pdf":
			if err := export.ExportPDF(*outFlag, services.Profile.Organisation, transactions); err != nil {
				logger.Fatal("Export failed", zap.Error(err))
			}
		}
		fmt.Printf("Exported %d transactions to %s\n", len(transactions), *outFlag)

	case "chart":
		totals, err := dbService.TypeTotals(ctx, *fromFlag, *toFlag)
		if err != nil {
			logger.Fatal("Failed to load type totals", zap.Error(err))
		}
		file, err := os.Create(*outFlag)
		if err != nil {
			logger.Fatal("Failed to create output file", zap.String("path", *outFlag), zap.Error(err))
		}
		defer file.Close()
		if err := export.ExportChart(file, totals); err != nil {
			logger.Fatal("Chart export failed", zap.Error(err))
		}
		fmt.Printf("Chart written to %s\n", *outFlag)

	case "receipt":
		if *srNoFlag <= 0 {
			fmt.Println("The receipt format needs -sr-no")
			os.Exit(2)
		}
		txn, err := dbService.GetTransaction(ctx, *srNoFlag)
		if err != nil {
			logger.Fatal("Failed to load transaction", zap.Int64("sr_no", *srNoFlag), zap.Error(err))
		}
		if err := export.ExportReceipt(*outFlag, services.Profile, txn); err != nil {
			logger.Fatal("Receipt export failed", zap.Error(err))
		}
		fmt.Printf("Receipt for transaction %d written to %s\n", *srNoFlag, *outFlag)

	default:
		fmt.Printf("Unknown format %q; use csv, xlsx, pdf, chart or receipt\n", *formatFlag)
		os.Exit(2)
	}
}
