package store

import (
	"context"
	"errors"

	"bank-ledger-go/internal/models"

	"github.com/shopspring/decimal"
)

// Sentinel errors shared across the store boundary. Validation failures
// are reported separately as *models.ValidationError; anything else that
// bubbles up is a generic failure surfaced to the user as-is.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// LedgerStore is the durable record of every transaction and the current
// value of each funding source. Writes that touch a balance are atomic
// with the triggering row mutation: the balance adjustment and the
// insert/update/delete commit or roll back together.
type LedgerStore interface {
	// --- Transactions ---
	InsertTransaction(ctx context.Context, in models.TransactionInput) (*models.Transaction, error)
	// ImportTransaction persists a CSV-imported row. The row never carries
	// a bank association, so bank-mode rows skip the bank-balance branch.
	ImportTransaction(ctx context.Context, in models.TransactionInput) (*models.Transaction, error)
	// UpdateTransaction replaces all mutable fields of the identified
	// transaction. The original balance effect is undone and the new one
	// applied even when only non-financial fields changed.
	UpdateTransaction(ctx context.Context, srNo int64, in models.TransactionInput) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, srNo int64) error
	GetTransaction(ctx context.Context, srNo int64) (*models.Transaction, error)
	// ListTransactions returns transactions most recent date first,
	// optionally restricted to the inclusive [from, to] day interval
	// (YYYY-MM-DD); empty bounds mean no restriction.
	ListTransactions(ctx context.Context, from, to string) ([]models.Transaction, error)

	// --- Funding sources ---
	UpsertBank(ctx context.Context, name string, balance decimal.Decimal) error
	DeleteBank(ctx context.Context, name string) error
	ListBanks(ctx context.Context) ([]models.BankAccount, error)
	GetCash(ctx context.Context) (decimal.Decimal, error)
	// SetCash overwrites the cash balance unconditionally; it is a manual
	// correction, not an adjustment.
	SetCash(ctx context.Context, value decimal.Decimal) error

	// --- Derived aggregates (always fresh reads) ---
	Summary(ctx context.Context) (*models.Summary, error)
	RangeSummary(ctx context.Context, from, to string) ([]models.ModeTotal, error)
	DailySummary(ctx context.Context) ([]models.DailyTotal, error)
	TypeTotals(ctx context.Context, from, to string) ([]models.TypeTotal, error)

	// --- Users ---
	RegisterUser(ctx context.Context, username, password, question, answer string) error
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	SecurityQuestion(ctx context.Context, username string) (string, error)
	ResetPassword(ctx context.Context, username, answer, newPassword string) error

	// --- Lifecycle ---
	Close()
}
