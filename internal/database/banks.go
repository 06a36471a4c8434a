package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bank-ledger-go/internal/models"
	"bank-ledger-go/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// UpsertBank creates or replaces a named funding source with the given
// balance. This is a manual correction path, not an adjustment: the
// supplied balance overwrites whatever was there.
func (s *Service) UpsertBank(ctx context.Context, name string, balance decimal.Decimal) error {
	if name == "" {
		return &models.ValidationError{Field: "bank name", Reason: "required"}
	}

	if _, err := s.db.ExecContext(ctx, queryUpsertBank, name, balance.String()); err != nil {
		return fmt.Errorf("failed to upsert bank %q: %w", name, err)
	}

	zap.L().Info("Bank balance set", zap.String("bank", name), zap.String("balance", balance.String()))
	return nil
}

func (s *Service) DeleteBank(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, queryDeleteBank, name)
	if err != nil {
		return fmt.Errorf("failed to delete bank %q: %w", name, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("bank %q: %w", name, store.ErrNotFound)
	}

	zap.L().Info("Bank deleted", zap.String("bank", name))
	return nil
}

func (s *Service) ListBanks(ctx context.Context) ([]models.BankAccount, error) {
	rows, err := s.db.QueryContext(ctx, queryListBanks)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	var banks []models.BankAccount
	for rows.Next() {
		var (
			bank       models.BankAccount
			balanceStr string
		)
		if err := rows.Scan(&bank.BankName, &balanceStr); err != nil {
			return nil, fmt.Errorf("failed to scan bank row: %w", err)
		}
		bank.Balance, err = decimal.NewFromString(balanceStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse balance '%s': %w", balanceStr, err)
		}
		banks = append(banks, bank)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank rows: %w", err)
	}

	return banks, nil
}

func (s *Service) GetCash(ctx context.Context) (decimal.Decimal, error) {
	var cashStr string
	err := s.db.QueryRowContext(ctx, queryGetCash).Scan(&cashStr)
	if errors.Is(err, sql.ErrNoRows) {
		// The migration seeds the row; treat a missing one as zero.
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read cash balance: %w", err)
	}

	cash, err := decimal.NewFromString(cashStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse cash balance '%s': %w", cashStr, err)
	}
	return cash, nil
}

// SetCash overwrites the cash balance unconditionally.
func (s *Service) SetCash(ctx context.Context, value decimal.Decimal) error {
	if _, err := s.db.ExecContext(ctx, querySetCash, value.String()); err != nil {
		return fmt.Errorf("failed to set cash balance: %w", err)
	}

	zap.L().Info("Cash balance set", zap.String("cash", value.String()))
	return nil
}
