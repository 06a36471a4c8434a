package database

import (
	"context"
	"errors"
	"testing"

	"bank-ledger-go/internal/models"
	"bank-ledger-go/internal/store"

	"github.com/shopspring/decimal"
)

func TestUpsertBank_InsertAndReplace(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := service.UpsertBank(ctx, "HDFC", decimal.NewFromInt(100)); err != nil {
		t.Fatalf("UpsertBank failed: %v", err)
	}
	if err := service.UpsertBank(ctx, "SBIN", decimal.NewFromInt(200)); err != nil {
		t.Fatalf("UpsertBank failed: %v", err)
	}

	// Same name overwrites the stored balance.
	if err := service.UpsertBank(ctx, "HDFC", decimal.NewFromInt(350)); err != nil {
		t.Fatalf("UpsertBank replace failed: %v", err)
	}

	banks, err := service.ListBanks(ctx)
	if err != nil {
		t.Fatalf("ListBanks failed: %v", err)
	}
	if len(banks) != 2 {
		t.Fatalf("Expected 2 banks, got %d", len(banks))
	}
	if !mustBankBalance(t, service, "HDFC").Equal(decimal.NewFromInt(350)) {
		t.Errorf("Expected HDFC balance 350 after replace")
	}
}

func TestUpsertBank_EmptyNameRejected(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	err := service.UpsertBank(context.Background(), "", decimal.NewFromInt(10))
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("Expected validation error, got: %v", err)
	}
}

func TestDeleteBank(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := service.UpsertBank(ctx, "ICIC", decimal.NewFromInt(75)); err != nil {
		t.Fatalf("UpsertBank failed: %v", err)
	}

	if err := service.DeleteBank(ctx, "ICIC"); err != nil {
		t.Fatalf("DeleteBank failed: %v", err)
	}

	banks, err := service.ListBanks(ctx)
	if err != nil {
		t.Fatalf("ListBanks failed: %v", err)
	}
	if len(banks) != 0 {
		t.Errorf("Expected no banks after delete, got %d", len(banks))
	}

	if err := service.DeleteBank(ctx, "ICIC"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown bank, got: %v", err)
	}
}

func TestSetCash_Overwrites(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := service.SetCash(ctx, decimal.NewFromInt(500)); err != nil {
		t.Fatalf("SetCash failed: %v", err)
	}
	if !mustCash(t, service).Equal(decimal.NewFromInt(500)) {
		t.Errorf("Expected cash 500 after set")
	}

	// Setting is not additive.
	if err := service.SetCash(ctx, decimal.NewFromInt(120)); err != nil {
		t.Fatalf("SetCash failed: %v", err)
	}
	if !mustCash(t, service).Equal(decimal.NewFromInt(120)) {
		t.Errorf("Expected cash 120 after overwrite")
	}
}

func TestSummary_TotalIsCashPlusBanks(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := service.SetCash(ctx, decimal.NewFromInt(100)); err != nil {
		t.Fatalf("SetCash failed: %v", err)
	}
	if err := service.UpsertBank(ctx, "HDFC", decimal.NewFromInt(300)); err != nil {
		t.Fatalf("UpsertBank failed: %v", err)
	}
	if err := service.UpsertBank(ctx, "SBIN", decimal.NewFromInt(50)); err != nil {
		t.Fatalf("UpsertBank failed: %v", err)
	}

	if _, err := service.InsertTransaction(ctx, validInput(models.TypeDeposit, models.ModeCash, "", 40)); err != nil {
		t.Fatalf("InsertTransaction failed: %v", err)
	}
	if _, err := service.InsertTransaction(ctx, validInput(models.TypeWithdrawal, models.ModeBank, "HDFC", 60)); err != nil {
		t.Fatalf("InsertTransaction failed: %v", err)
	}

	summary, err := service.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if !summary.Cash.Equal(decimal.NewFromInt(140)) {
		t.Errorf("Expected cash 140, got %s", summary.Cash.String())
	}
	expectedTotal := summary.Cash
	for _, b := range summary.Banks {
		expectedTotal = expectedTotal.Add(b.Balance)
	}
	if !summary.Total.Equal(expectedTotal) {
		t.Errorf("Expected total %s, got %s", expectedTotal.String(), summary.Total.String())
	}
	if !summary.TotalDeposits.Equal(decimal.NewFromInt(40)) {
		t.Errorf("Expected deposits 40, got %s", summary.TotalDeposits.String())
	}
	if !summary.TotalWithdrawals.Equal(decimal.NewFromInt(60)) {
		t.Errorf("Expected withdrawals 60, got %s", summary.TotalWithdrawals.String())
	}
}

func TestRangeSummary_GroupsByTypeAndMode(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := service.UpsertBank(ctx, "HDFC", decimal.NewFromInt(0)); err != nil {
		t.Fatalf("UpsertBank failed: %v", err)
	}
	for _, in := range []models.TransactionInput{
		validInput(models.TypeDeposit, models.ModeCash, "", 10),
		validInput(models.TypeDeposit, models.ModeCash, "", 20),
		validInput(models.TypeWithdrawal, models.ModeBank, "HDFC", 5),
	} {
		if _, err := service.InsertTransaction(ctx, in); err != nil {
			t.Fatalf("InsertTransaction failed: %v", err)
		}
	}

	transactions, err := service.ListTransactions(ctx, "", "")
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	day := transactions[0].Date.Format("2006-01-02")

	totals, err := service.RangeSummary(ctx, day, day)
	if err != nil {
		t.Fatalf("RangeSummary failed: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("Expected 2 type/mode groups, got %d", len(totals))
	}

	found := map[string]decimal.Decimal{}
	for _, mt := range totals {
		found[string(mt.Type)+"/"+string(mt.Mode)] = mt.Total
	}
	if !found["Deposit/Cash"].Equal(decimal.NewFromInt(30)) {
		t.Errorf("Expected Deposit/Cash total 30, got %s", found["Deposit/Cash"].String())
	}
	if !found["Withdrawal/Bank"].Equal(decimal.NewFromInt(5)) {
		t.Errorf("Expected Withdrawal/Bank total 5, got %s", found["Withdrawal/Bank"].String())
	}
}

func TestDailySummaryAndTypeTotals(t *testing.T) {
	service, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := service.InsertTransaction(ctx, validInput(models.TypeDeposit, models.ModeCash, "", 100)); err != nil {
		t.Fatalf("InsertTransaction failed: %v", err)
	}
	if _, err := service.InsertTransaction(ctx, validInput(models.TypeWithdrawal, models.ModeCash, "", 30)); err != nil {
		t.Fatalf("InsertTransaction failed: %v", err)
	}

	days, err := service.DailySummary(ctx)
	if err != nil {
		t.Fatalf("DailySummary failed: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("Expected 1 day, got %d", len(days))
	}
	if !days[0].Deposits.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected daily deposits 100, got %s", days[0].Deposits.String())
	}
	if !days[0].Withdrawals.Equal(decimal.NewFromInt(30)) {
		t.Errorf("Expected daily withdrawals 30, got %s", days[0].Withdrawals.String())
	}

	totals, err := service.TypeTotals(ctx, "", "")
	if err != nil {
		t.Fatalf("TypeTotals failed: %v", err)
	}
	byType := map[models.TransactionType]decimal.Decimal{}
	for _, tt := range totals {
		byType[tt.Type] = tt.Total
	}
	if !byType[models.TypeDeposit].Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected Deposit total 100, got %s", byType[models.TypeDeposit].String())
	}
	if !byType[models.TypeWithdrawal].Equal(decimal.NewFromInt(30)) {
		t.Errorf("Expected Withdrawal total 30, got %s", byType[models.TypeWithdrawal].String())
	}
}
