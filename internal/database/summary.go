package database

import (
	"context"
	"database/sql"
	"fmt"

	"bank-ledger-go/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Summary recomputes the derived aggregates by scanning the current
// balance state and transaction history. The results are never cached;
// every call is a fresh read.
func (s *Service) Summary(ctx context.Context) (*models.Summary, error) {
	cash, err := s.GetCash(ctx)
	if err != nil {
		return nil, err
	}

	banks, err := s.ListBanks(ctx)
	if err != nil {
		return nil, err
	}

	bankTotal, err := s.sumScalar(ctx, querySumBankBalances)
	if err != nil {
		return nil, fmt.Errorf("failed to sum bank balances: %w", err)
	}

	deposits, err := s.sumScalar(ctx, querySumAmountByType, string(models.TypeDeposit))
	if err != nil {
		return nil, fmt.Errorf("failed to sum deposits: %w", err)
	}

	withdrawals, err := s.sumScalar(ctx, querySumAmountByType, string(models.TypeWithdrawal))
	if err != nil {
		return nil, fmt.Errorf("failed to sum withdrawals: %w", err)
	}

	total := cash.Add(bankTotal)
	return &models.Summary{
		Cash:             cash,
		Banks:            banks,
		Total:            total,
		TotalDeposits:    deposits,
		TotalWithdrawals: withdrawals,
		Closing:          total,
	}, nil
}

// RangeSummary sums amounts grouped by (type, mode) over the inclusive
// day interval.
func (s *Service) RangeSummary(ctx context.Context, from, to string) ([]models.ModeTotal, error) {
	rows, err := s.db.QueryContext(ctx, queryRangeSummary, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query range summary: %w", err)
	}
	defer closeRows(rows)

	var totals []models.ModeTotal
	for rows.Next() {
		var (
			mt       models.ModeTotal
			totalStr string
		)
		if err := rows.Scan(&mt.Type, &mt.Mode, &totalStr); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		mt.Total, err = decimal.NewFromString(totalStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse total '%s': %w", totalStr, err)
		}
		totals = append(totals, mt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summary rows: %w", err)
	}
	return totals, nil
}

// DailySummary returns each calendar day's deposit and withdrawal sums,
// most recent day first.
func (s *Service) DailySummary(ctx context.Context) ([]models.DailyTotal, error) {
	rows, err := s.db.QueryContext(ctx, queryDailySummary)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily summary: %w", err)
	}
	defer closeRows(rows)

	var totals []models.DailyTotal
	for rows.Next() {
		var (
			dt            models.DailyTotal
			depositStr    string
			withdrawalStr string
		)
		if err := rows.Scan(&dt.Day, &depositStr, &withdrawalStr); err != nil {
			return nil, fmt.Errorf("failed to scan daily summary row: %w", err)
		}
		dt.Deposits, err = decimal.NewFromString(depositStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse deposits '%s': %w", depositStr, err)
		}
		dt.Withdrawals, err = decimal.NewFromString(withdrawalStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse withdrawals '%s': %w", withdrawalStr, err)
		}
		totals = append(totals, dt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily summary rows: %w", err)
	}
	return totals, nil
}

// TypeTotals sums amounts grouped by transaction type, optionally over an
// inclusive day interval. This feeds the graphical report.
func (s *Service) TypeTotals(ctx context.Context, from, to string) ([]models.TypeTotal, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if from != "" && to != "" {
		rows, err = s.db.QueryContext(ctx, queryTypeTotalsByRange, from, to)
	} else {
		rows, err = s.db.QueryContext(ctx, queryTypeTotals)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query type totals: %w", err)
	}
	defer closeRows(rows)

	var totals []models.TypeTotal
	for rows.Next() {
		var (
			tt       models.TypeTotal
			totalStr string
		)
		if err := rows.Scan(&tt.Type, &totalStr); err != nil {
			return nil, fmt.Errorf("failed to scan type total row: %w", err)
		}
		tt.Total, err = decimal.NewFromString(totalStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse total '%s': %w", totalStr, err)
		}
		totals = append(totals, tt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating type total rows: %w", err)
	}
	return totals, nil
}

func (s *Service) sumScalar(ctx context.Context, query string, args ...any) (decimal.Decimal, error) {
	var sumStr string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&sumStr); err != nil {
		return decimal.Zero, err
	}
	sum, err := decimal.NewFromString(sumStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse sum '%s': %w", sumStr, err)
	}
	return sum, nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		zap.L().Warn("Failed to close rows", zap.Error(err))
	}
}
