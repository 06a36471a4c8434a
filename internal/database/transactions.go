package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bank-ledger-go/internal/models"
	"bank-ledger-go/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// balanceDelta returns the signed effect a transaction has on its target
// funding source: deposits add, withdrawals subtract.
func balanceDelta(txType models.TransactionType, amount decimal.Decimal) decimal.Decimal {
	if txType == models.TypeWithdrawal {
		return amount.Neg()
	}
	return amount
}

// InsertTransaction validates the form input, then persists the row and
// applies its balance effect in a single database transaction.
func (s *Service) InsertTransaction(ctx context.Context, in models.TransactionInput) (*models.Transaction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.insert(ctx, in)
}

// ImportTransaction persists a CSV-imported row. Imported rows never carry
// a bank association, so bank-mode rows leave every balance untouched
// while cash rows still move the cash balance.
func (s *Service) ImportTransaction(ctx context.Context, in models.TransactionInput) (*models.Transaction, error) {
	if err := in.ValidateImport(); err != nil {
		return nil, err
	}
	return s.insert(ctx, in)
}

func (s *Service) insert(ctx context.Context, in models.TransactionInput) (*models.Transaction, error) {
	if in.TransactionNo == "" {
		in.TransactionNo = "TXN-" + uuid.New().String()
	}
	now := time.Now()

	zap.L().Info("Recording transaction",
		zap.String("type", string(in.Type)),
		zap.String("mode", string(in.Mode)),
		zap.String("bank", in.BankName),
		zap.String("amount", in.Amount.String()))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, queryInsertTransaction,
		now.Format(models.TimeLayout), in.CustomerName, in.AccountNumber,
		in.IFSCCode, in.Mobile, in.Address, in.TransactionNo,
		string(in.Type), string(in.Mode), nullableBank(in.BankName), in.Amount.String())
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	srNo, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get assigned serial number: %w", err)
	}

	if err := s.applyBalanceDelta(ctx, tx, in.Mode, in.BankName, balanceDelta(in.Type, in.Amount)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Info("Transaction recorded",
		zap.Int64("sr_no", srNo),
		zap.String("transaction_no", in.TransactionNo))

	stored := transactionFromInput(srNo, now, in)
	return &stored, nil
}

// UpdateTransaction replaces all mutable fields of the identified
// transaction. An edit is treated as delete-then-insert for balance
// purposes: the old effect is undone with the original type/mode/bank/
// amount, then the new effect is applied, all in one database
// transaction, even when only non-financial fields changed.
func (s *Service) UpdateTransaction(ctx context.Context, srNo int64, in models.TransactionInput) (*models.Transaction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	original, err := getTransactionRow(ctx, tx, srNo)
	if err != nil {
		return nil, err
	}

	if err := s.undoBalanceDelta(ctx, tx, original); err != nil {
		return nil, err
	}
	if err := s.applyBalanceDelta(ctx, tx, in.Mode, in.BankName, balanceDelta(in.Type, in.Amount)); err != nil {
		return nil, err
	}

	now := time.Now()
	if in.TransactionNo == "" {
		in.TransactionNo = original.TransactionNo
	}
	_, err = tx.ExecContext(ctx, queryUpdateTransaction,
		now.Format(models.TimeLayout), in.CustomerName, in.AccountNumber,
		in.IFSCCode, in.Mobile, in.Address, in.TransactionNo,
		string(in.Type), string(in.Mode), nullableBank(in.BankName), in.Amount.String(), srNo)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Info("Transaction updated",
		zap.Int64("sr_no", srNo),
		zap.String("old_amount", original.Amount.String()),
		zap.String("new_amount", in.Amount.String()))

	stored := transactionFromInput(srNo, now, in)
	return &stored, nil
}

// DeleteTransaction undoes the original balance effect and removes the
// row, atomically.
func (s *Service) DeleteTransaction(ctx context.Context, srNo int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	original, err := getTransactionRow(ctx, tx, srNo)
	if err != nil {
		return err
	}

	if err := s.undoBalanceDelta(ctx, tx, original); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, queryDeleteTransaction, srNo); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Info("Transaction deleted", zap.Int64("sr_no", srNo))
	return nil
}

func (s *Service) GetTransaction(ctx context.Context, srNo int64) (*models.Transaction, error) {
	return getTransactionRow(ctx, s.db, srNo)
}

// ListTransactions returns transactions most recent date first. When both
// bounds are set the list is restricted to the inclusive day interval.
func (s *Service) ListTransactions(ctx context.Context, from, to string) ([]models.Transaction, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if from != "" && to != "" {
		rows, err = s.db.QueryContext(ctx, queryListTransactionsByRange, from, to)
	} else {
		rows, err = s.db.QueryContext(ctx, queryListTransactions)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return transactions, nil
}

// applyBalanceDelta moves the target funding source by delta inside the
// given database transaction. An empty bank name on a bank-mode row means
// the row has no bank association (CSV import); nothing is adjusted.
func (s *Service) applyBalanceDelta(ctx context.Context, tx *sql.Tx, mode models.TransactionMode, bankName string, delta decimal.Decimal) error {
	if mode == models.ModeCash {
		var cashStr string
		if err := tx.QueryRowContext(ctx, queryGetCash).Scan(&cashStr); err != nil {
			return fmt.Errorf("failed to read cash balance: %w", err)
		}
		cash, err := decimal.NewFromString(cashStr)
		if err != nil {
			return fmt.Errorf("failed to parse cash balance '%s': %w", cashStr, err)
		}
		if _, err := tx.ExecContext(ctx, querySetCash, cash.Add(delta).String()); err != nil {
			return fmt.Errorf("failed to update cash balance: %w", err)
		}
		return nil
	}

	if bankName == "" {
		return nil
	}

	var balanceStr string
	err := tx.QueryRowContext(ctx, queryGetBankBalance, bankName).Scan(&balanceStr)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("bank %q: %w", bankName, store.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to read balance for bank %q: %w", bankName, err)
	}
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return fmt.Errorf("failed to parse balance '%s' for bank %q: %w", balanceStr, bankName, err)
	}
	if _, err := tx.ExecContext(ctx, querySetBankBalance, balance.Add(delta).String(), bankName); err != nil {
		return fmt.Errorf("failed to update balance for bank %q: %w", bankName, err)
	}
	return nil
}

// undoBalanceDelta reverses a stored transaction's balance effect. A bank
// that has since been deleted is no longer tracked, so its share of the
// undo is skipped rather than failed.
func (s *Service) undoBalanceDelta(ctx context.Context, tx *sql.Tx, t *models.Transaction) error {
	err := s.applyBalanceDelta(ctx, tx, t.Mode, t.BankName, balanceDelta(t.Type, t.Amount).Neg())
	if errors.Is(err, store.ErrNotFound) {
		zap.L().Warn("Bank no longer tracked, skipping balance undo",
			zap.Int64("sr_no", t.SrNo),
			zap.String("bank", t.BankName))
		return nil
	}
	return err
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryRower covers *sql.DB and *sql.Tx so row fetches can run either
// standalone or inside a write transaction.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getTransactionRow(ctx context.Context, q queryRower, srNo int64) (*models.Transaction, error) {
	row := q.QueryRowContext(ctx, queryGetTransaction, srNo)
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %d: %w", srNo, store.ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func scanTransaction(sc rowScanner) (*models.Transaction, error) {
	var (
		t         models.Transaction
		dateStr   string
		bankName  sql.NullString
		amountStr string
	)
	err := sc.Scan(&t.SrNo, &dateStr, &t.CustomerName, &t.AccountNumber,
		&t.IFSCCode, &t.Mobile, &t.Address, &t.TransactionNo,
		&t.Type, &t.Mode, &bankName, &amountStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	t.Date, err = time.Parse(models.TimeLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction date %q: %w", dateStr, err)
	}
	if bankName.Valid {
		t.BankName = bankName.String
	}
	t.Amount, err = decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return &t, nil
}

func transactionFromInput(srNo int64, date time.Time, in models.TransactionInput) models.Transaction {
	return models.Transaction{
		SrNo:          srNo,
		Date:          date,
		CustomerName:  in.CustomerName,
		AccountNumber: in.AccountNumber,
		IFSCCode:      in.IFSCCode,
		Mobile:        in.Mobile,
		Address:       in.Address,
		TransactionNo: in.TransactionNo,
		Type:          in.Type,
		Mode:          in.Mode,
		BankName:      in.BankName,
		Amount:        in.Amount,
	}
}

func nullableBank(name string) any {
	if name == "" {
		return nil
	}
	return name
}
