package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of money movement.
type TransactionType string

// TransactionMode is the funding source a transaction affects.
type TransactionMode string

const (
	TypeDeposit    TransactionType = "Deposit"
	TypeWithdrawal TransactionType = "Withdrawal"

	ModeCash TransactionMode = "Cash"
	ModeBank TransactionMode = "Bank"
)

// TimeLayout is the storage format for transaction dates.
const TimeLayout = "2006-01-02 15:04:05"

var (
	// IFSC: 4-letter bank code, literal '0', 6 alphanumerics.
	ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	// Indian mobile: 10 digits, leading digit 6-9.
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// ValidationError reports a rejected transaction field. It is surfaced to
// the user verbatim, so the reason reads as a sentence fragment.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Transaction is a stored ledger entry. SrNo is assigned by the store and
// immutable; every other field is replaceable through an edit.
type Transaction struct {
	SrNo          int64
	Date          time.Time
	CustomerName  string
	AccountNumber string
	IFSCCode      string
	Mobile        string
	Address       string
	TransactionNo string
	Type          TransactionType
	Mode          TransactionMode
	BankName      string // set iff Mode == ModeBank
	Amount        decimal.Decimal
}

// TransactionInput is the typed form-data structure built up front and
// passed by value into the store. The store assigns SrNo and Date.
type TransactionInput struct {
	CustomerName  string
	AccountNumber string
	IFSCCode      string
	Mobile        string
	Address       string
	TransactionNo string
	Type          TransactionType
	Mode          TransactionMode
	BankName      string
	Amount        decimal.Decimal
}

// Validate enforces the full form-submission invariants, including the
// bank-name/mode pairing.
func (in TransactionInput) Validate() error {
	if err := in.validateCore(); err != nil {
		return err
	}
	switch in.Mode {
	case ModeBank:
		if strings.TrimSpace(in.BankName) == "" {
			return &ValidationError{Field: "bank name", Reason: "required for bank-mode transactions"}
		}
	case ModeCash:
		if in.BankName != "" {
			return &ValidationError{Field: "bank name", Reason: "must be empty for cash-mode transactions"}
		}
	}
	return nil
}

// ValidateImport enforces the invariants for CSV-imported rows. Imported
// transactions never carry a bank association, whatever their mode, so
// the bank-name pairing rule does not apply.
func (in TransactionInput) ValidateImport() error {
	if in.BankName != "" {
		return &ValidationError{Field: "bank name", Reason: "not accepted on import"}
	}
	return in.validateCore()
}

func (in TransactionInput) validateCore() error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return &ValidationError{Field: "customer name", Reason: "required"}
	}
	if strings.TrimSpace(in.AccountNumber) == "" {
		return &ValidationError{Field: "account number", Reason: "required"}
	}
	if !ifscPattern.MatchString(in.IFSCCode) {
		return &ValidationError{Field: "IFSC code", Reason: "must match AAAA0XXXXXX (4 letters, zero, 6 alphanumerics)"}
	}
	if !mobilePattern.MatchString(in.Mobile) {
		return &ValidationError{Field: "mobile", Reason: "must be 10 digits starting with 6-9"}
	}
	switch in.Type {
	case TypeDeposit, TypeWithdrawal:
	default:
		return &ValidationError{Field: "transaction type", Reason: "must be Deposit or Withdrawal"}
	}
	switch in.Mode {
	case ModeCash, ModeBank:
	default:
		return &ValidationError{Field: "transaction mode", Reason: "must be Cash or Bank"}
	}
	if !in.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	return nil
}
