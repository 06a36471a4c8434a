package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"bank-ledger-go/internal/models"
	"bank-ledger-go/internal/store"

	"github.com/shopspring/decimal"
)

// stubStore serves canned read-side data; unimplemented methods panic,
// which is fine since the renderer only reads.
type stubStore struct {
	store.LedgerStore
	summary      models.Summary
	modeTotals   []models.ModeTotal
	dailyTotals  []models.DailyTotal
	transactions []models.Transaction
}

func (s *stubStore) Summary(ctx context.Context) (*models.Summary, error) {
	return &s.summary, nil
}

func (s *stubStore) RangeSummary(ctx context.Context, from, to string) ([]models.ModeTotal, error) {
	return s.modeTotals, nil
}

func (s *stubStore) DailySummary(ctx context.Context) ([]models.DailyTotal, error) {
	return s.dailyTotals, nil
}

func (s *stubStore) ListTransactions(ctx context.Context, from, to string) ([]models.Transaction, error) {
	return s.transactions, nil
}

func testProfile() models.Profile {
	return models.Profile{Organisation: "Test Bank", Currency: "Rs."}
}

func TestBalanceSummary(t *testing.T) {
	st := &stubStore{
		summary: models.Summary{
			Cash: decimal.NewFromInt(140),
			Banks: []models.BankAccount{
				{BankName: "HDFC", Balance: decimal.NewFromInt(300)},
				{BankName: "SBIN", Balance: decimal.NewFromInt(50)},
			},
			Total:            decimal.NewFromInt(490),
			TotalDeposits:    decimal.NewFromInt(40),
			TotalWithdrawals: decimal.NewFromInt(60),
			Closing:          decimal.NewFromInt(490),
		},
	}

	var buf bytes.Buffer
	r := NewRenderer(st, testProfile(), &buf)
	if err := r.BalanceSummary(context.Background()); err != nil {
		t.Fatalf("BalanceSummary failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Cash in Hand:", "Rs. 140.00",
		"HDFC:", "Rs. 300.00",
		"SBIN:", "Rs. 50.00",
		"Total Balance:", "Rs. 490.00",
		"Total Deposits:", "Rs. 40.00",
		"Total Withdrawals:", "Rs. 60.00",
		"Closing Balance:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
}

func TestBalanceSummary_NoBanks(t *testing.T) {
	st := &stubStore{summary: models.Summary{}}

	var buf bytes.Buffer
	r := NewRenderer(st, testProfile(), &buf)
	if err := r.BalanceSummary(context.Background()); err != nil {
		t.Fatalf("BalanceSummary failed: %v", err)
	}

	if !strings.Contains(buf.String(), "No banks registered") {
		t.Errorf("Expected empty-bank notice, got:\n%s", buf.String())
	}
}

func TestRangeSummary(t *testing.T) {
	st := &stubStore{
		modeTotals: []models.ModeTotal{
			{Type: models.TypeDeposit, Mode: models.ModeCash, Total: decimal.NewFromInt(30)},
			{Type: models.TypeWithdrawal, Mode: models.ModeBank, Total: decimal.NewFromInt(5)},
		},
	}

	var buf bytes.Buffer
	r := NewRenderer(st, testProfile(), &buf)
	if err := r.RangeSummary(context.Background(), "2026-01-01", "2026-01-31"); err != nil {
		t.Fatalf("RangeSummary failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"2026-01-01", "2026-01-31", "Deposit", "Cash", "Rs. 30.00", "Withdrawal", "Bank", "Rs. 5.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
}

func TestRangeSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&stubStore{}, testProfile(), &buf)
	if err := r.RangeSummary(context.Background(), "2026-01-01", "2026-01-31"); err != nil {
		t.Fatalf("RangeSummary failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No transactions in range") {
		t.Errorf("Expected empty-range notice, got:\n%s", buf.String())
	}
}

func TestDailySummary(t *testing.T) {
	st := &stubStore{
		dailyTotals: []models.DailyTotal{
			{Day: "2026-02-02", Deposits: decimal.NewFromInt(100), Withdrawals: decimal.NewFromInt(30)},
			{Day: "2026-02-01", Deposits: decimal.NewFromInt(10), Withdrawals: decimal.Zero},
		},
	}

	var buf bytes.Buffer
	r := NewRenderer(st, testProfile(), &buf)
	if err := r.DailySummary(context.Background()); err != nil {
		t.Fatalf("DailySummary failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "2026-02-02") || !strings.Contains(out, "Rs. 100.00") {
		t.Errorf("Expected per-day totals in output:\n%s", out)
	}
	if strings.Index(out, "2026-02-02") > strings.Index(out, "2026-02-01") {
		t.Errorf("Expected most recent day first:\n%s", out)
	}
}

func TestDetailed(t *testing.T) {
	date, _ := time.Parse(models.TimeLayout, "2026-02-02 10:30:00")
	st := &stubStore{
		transactions: []models.Transaction{
			{
				SrNo:          1,
				Date:          date,
				CustomerName:  "Asha Verma",
				TransactionNo: "TXN-1",
				Type:          models.TypeDeposit,
				Mode:          models.ModeBank,
				BankName:      "HDFC",
				Amount:        decimal.NewFromInt(500),
			},
		},
	}

	var buf bytes.Buffer
	r := NewRenderer(st, testProfile(), &buf)
	if err := r.Detailed(context.Background(), "", ""); err != nil {
		t.Fatalf("Detailed failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Asha Verma", "TXN-1", "HDFC", "Rs. 500.00", "2026-02-02 10:30:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
}
