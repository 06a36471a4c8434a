package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"bank-ledger-go/internal/common"
	"bank-ledger-go/internal/models"
	"bank-ledger-go/internal/store"
)

// Renderer writes the read-side reports as plain text. It holds no state
// beyond its dependencies; every report runs fresh queries.
type Renderer struct {
	store   store.LedgerStore
	profile models.Profile
	out     io.Writer
}

func NewRenderer(st store.LedgerStore, profile models.Profile, out io.Writer) *Renderer {
	return &Renderer{
		store:   st,
		profile: profile,
		out:     out,
	}
}

// BalanceSummary prints cash, every bank balance, and the derived totals.
func (r *Renderer) BalanceSummary(ctx context.Context) error {
	summary, err := r.store.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to load balance summary: %w", err)
	}

	fmt.Fprintf(r.out, "%-28s %s\n", "Cash in Hand:", common.FormatAmount(r.profile.Currency, summary.Cash))
	r.separator()
	for i, bank := range summary.Banks {
		prefix := common.BoxPrefix(i == len(summary.Banks)-1)
		fmt.Fprintf(r.out, "%s%-25s %s\n", prefix, bank.BankName+":", common.FormatAmount(r.profile.Currency, bank.Balance))
	}
	if len(summary.Banks) == 0 {
		fmt.Fprintln(r.out, "No banks registered")
	}
	r.separator()
	fmt.Fprintf(r.out, "%-28s %s\n", "Total Balance:", common.FormatAmount(r.profile.Currency, summary.Total))
	fmt.Fprintf(r.out, "%-28s %s\n", "Total Deposits:", common.FormatAmount(r.profile.Currency, summary.TotalDeposits))
	fmt.Fprintf(r.out, "%-28s %s\n", "Total Withdrawals:", common.FormatAmount(r.profile.Currency, summary.TotalWithdrawals))
	fmt.Fprintf(r.out, "%-28s %s\n", "Closing Balance:", common.FormatAmount(r.profile.Currency, summary.Closing))

	return nil
}

// RangeSummary prints amount totals grouped by type and mode over an
// inclusive date range.
func (r *Renderer) RangeSummary(ctx context.Context, from, to string) error {
	totals, err := r.store.RangeSummary(ctx, from, to)
	if err != nil {
		return fmt.Errorf("failed to load range summary: %w", err)
	}

	fmt.Fprintf(r.out, "Summary %s to %s\n", from, to)
	r.separator()
	if len(totals) == 0 {
		fmt.Fprintln(r.out, "No transactions in range")
		return nil
	}

	fmt.Fprintf(r.out, "%-14s %-8s %s\n", "Type", "Mode", "Total")
	for _, mt := range totals {
		fmt.Fprintf(r.out, "%-14s %-8s %s\n", mt.Type, mt.Mode, common.FormatAmount(r.profile.Currency, mt.Total))
	}

	return nil
}

// DailySummary prints per-day deposit and withdrawal totals, most recent
// day first.
func (r *Renderer) DailySummary(ctx context.Context) error {
	days, err := r.store.DailySummary(ctx)
	if err != nil {
		return fmt.Errorf("failed to load daily summary: %w", err)
	}

	if len(days) == 0 {
		fmt.Fprintln(r.out, "No transactions recorded")
		return nil
	}

	fmt.Fprintf(r.out, "%-12s %-18s %s\n", "Date", "Deposits", "Withdrawals")
	r.separator()
	for _, day := range days {
		fmt.Fprintf(r.out, "%-12s %-18s %s\n",
			day.Day,
			common.FormatAmount(r.profile.Currency, day.Deposits),
			common.FormatAmount(r.profile.Currency, day.Withdrawals))
	}

	return nil
}

// Detailed prints the full transaction listing, optionally limited to an
// inclusive date range. Empty bounds list everything.
func (r *Renderer) Detailed(ctx context.Context, from, to string) error {
	transactions, err := r.store.ListTransactions(ctx, from, to)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	if len(transactions) == 0 {
		fmt.Fprintln(r.out, "No transactions recorded")
		return nil
	}

	fmt.Fprintf(r.out, "%-6s %-20s %-18s %-12s %-12s %-6s %-12s %s\n",
		"Sr", "Date", "Customer", "Txn No", "Type", "Mode", "Bank", "Amount")
	r.separator()
	for _, txn := range transactions {
		fmt.Fprintf(r.out, "%-6d %-20s %-18s %-12s %-12s %-6s %-12s %s\n",
			txn.SrNo,
			txn.Date.Format(models.TimeLayout),
			txn.CustomerName,
			txn.TransactionNo,
			txn.Type,
			txn.Mode,
			txn.BankName,
			common.FormatAmount(r.profile.Currency, txn.Amount))
	}

	return nil
}

func (r *Renderer) separator() {
	fmt.Fprintln(r.out, strings.Repeat("-", common.DefaultWidth))
}
