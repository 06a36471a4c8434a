package models

import "github.com/shopspring/decimal"

// BankAccount is a named funding source with its current balance.
type BankAccount struct {
	BankName string
	Balance  decimal.Decimal
}

// Summary holds the derived balance aggregates. They are recomputed from
// the stored state on every read; nothing here is cached.
type Summary struct {
	Cash             decimal.Decimal
	Banks            []BankAccount
	Total            decimal.Decimal // cash + sum of bank balances
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	Closing          decimal.Decimal // equals Total at time of viewing
}

// ModeTotal is one row of a grouped range summary: the summed amount for a
// (type, mode) pair over the queried interval.
type ModeTotal struct {
	Type  TransactionType
	Mode  TransactionMode
	Total decimal.Decimal
}

// DailyTotal is one calendar day's deposit and withdrawal sums.
type DailyTotal struct {
	Day         string // YYYY-MM-DD
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
}

// TypeTotal is the summed amount for one transaction type, used by the
// graphical report.
type TypeTotal struct {
	Type  TransactionType
	Total decimal.Decimal
}
