package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"bank-ledger-go/internal/models"
	"bank-ledger-go/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// columns is the fixed export column order, shared by every format.
var columns = []string{
	"sr_no",
	"date",
	"customer_name",
	"account_number",
	"ifsc_code",
	"mobile",
	"address",
	"transaction_no",
	"transaction_type",
	"transaction_mode",
	"bank_name",
	"amount",
}

// requiredImportColumns must all be present in an imported CSV header.
// address is optional and bank_name is never read back in.
var requiredImportColumns = []string{
	"customer_name",
	"account_number",
	"ifsc_code",
	"mobile",
	"transaction_no",
	"transaction_type",
	"transaction_mode",
	"amount",
}

func row(t models.Transaction) []string {
	return []string{
		fmt.Sprintf("%d", t.SrNo),
		t.Date.Format(models.TimeLayout),
		t.CustomerName,
		t.AccountNumber,
		t.IFSCCode,
		t.Mobile,
		t.Address,
		t.TransactionNo,
		string(t.Type),
		string(t.Mode),
		t.BankName,
		t.Amount.String(),
	}
}

// ExportCSV writes the header row followed by every transaction.
func ExportCSV(w io.Writer, transactions []models.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, t := range transactions {
		if err := writer.Write(row(t)); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", t.SrNo, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}

	zap.L().Info("Exported transactions to CSV", zap.Int("rows", len(transactions)))
	return nil
}

// ImportCSV reads transactions back from a CSV export and persists them
// through the store's import path. The whole file is validated before
// anything is written: a missing required column or an invalid row leaves
// the ledger untouched. Returns the number of rows imported.
func ImportCSV(ctx context.Context, st store.LedgerStore, r io.Reader) (int, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return 0, fmt.Errorf("empty CSV file")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range requiredImportColumns {
		if _, ok := index[required]; !ok {
			return 0, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	// Parse and validate everything up front so a bad row rejects the
	// whole file instead of leaving a partial import behind.
	var inputs []models.TransactionInput
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return 0, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		amount, err := decimal.NewFromString(field(record, "amount"))
		if err != nil {
			return 0, fmt.Errorf("line %d: invalid amount %q", line, field(record, "amount"))
		}

		in := models.TransactionInput{
			CustomerName:  field(record, "customer_name"),
			AccountNumber: field(record, "account_number"),
			IFSCCode:      field(record, "ifsc_code"),
			Mobile:        field(record, "mobile"),
			Address:       field(record, "address"),
			TransactionNo: field(record, "transaction_no"),
			Type:          models.TransactionType(field(record, "transaction_type")),
			Mode:          models.TransactionMode(field(record, "transaction_mode")),
			Amount:        amount,
		}
		if err := in.ValidateImport(); err != nil {
			return 0, fmt.Errorf("line %d: %w", line, err)
		}
		inputs = append(inputs, in)
	}

	for i, in := range inputs {
		if _, err := st.ImportTransaction(ctx, in); err != nil {
			return i, fmt.Errorf("failed to import row %d: %w", i+1, err)
		}
	}

	zap.L().Info("Imported transactions from CSV", zap.Int("rows", len(inputs)))
	return len(inputs), nil
}
