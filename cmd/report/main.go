package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"bank-ledger-go/internal/common"
	"bank-ledger-go/internal/config"
	"bank-ledger-go/internal/report"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	typeFlag := flag.String("type", "summary", "Report type: summary, daily or detailed")
	fromFlag := flag.String("from", "", "Range start YYYY-MM-DD (summary and detailed)")
	toFlag := flag.String("to", "", "Range end YYYY-MM-DD (summary and detailed)")
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

	renderer := report.NewRenderer(services.DbService, services.Profile, os.Stdout)

	reportType := strings.ToLower(*typeFlag)
	common.PrintHeader(fmt.Sprintf("%s: %s REPORT", services.Profile.Organisation, strings.ToUpper(reportType)), common.DefaultWidth)

	switch reportType {
	case "summary":
		if *fromFlag == "" || *toFlag == "" {
			fmt.Println("The summary report needs -from and -to dates")
			os.Exit(2)
		}
		err = renderer.RangeSummary(ctx, *fromFlag, *toFlag)
	case "daily":
		err = renderer.DailySummary(ctx)
	case "detailed":
		err = renderer.Detailed(ctx, *fromFlag, *toFlag)
	default:
		fmt.Printf("Unknown report type %q; use summary, daily or detailed\n", *typeFlag)
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal("Failed to render report", zap.String("type", reportType), zap.Error(err))
	}

	common.PrintFooter("Report complete", common.DefaultWidth)
}
