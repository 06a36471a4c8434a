package export

import (
	"fmt"

	"bank-ledger-go/internal/common"
	"bank-ledger-go/internal/models"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// pdfColumnWidths are the landscape A4 widths, in mm, matching the
// export column order.
var pdfColumnWidths = []float64{12, 34, 32, 26, 24, 22, 30, 34, 20, 14, 16, 22}

// ExportPDF writes the full transaction listing as a landscape table
// headed by the organisation name.
func ExportPDF(path, organisation string, transactions []models.Transaction) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, organisation, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Transaction Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(230, 230, 230)
	for i, name := range columns {
		pdf.CellFormat(pdfColumnWidths[i], 7, name, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 7)
	for _, t := range transactions {
		for i, value := range row(t) {
			pdf.CellFormat(pdfColumnWidths[i], 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	zap.L().Info("Exported transactions to PDF",
		zap.String("path", path),
		zap.Int("rows", len(transactions)))
	return nil
}

// ExportReceipt writes a single transaction as a key/value receipt under
// the organisation header.
func ExportReceipt(path string, profile models.Profile, t *models.Transaction) error {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, profile.Organisation, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Transaction Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := []struct {
		label string
		value string
	}{
		{"Serial No", fmt.Sprintf("%d", t.SrNo)},
		{"Date", t.Date.Format(models.TimeLayout)},
		{"Customer Name", t.CustomerName},
		{"Account Number", t.AccountNumber},
		{"IFSC Code", t.IFSCCode},
		{"Mobile", t.Mobile},
		{"Address", t.Address},
		{"Transaction No", t.TransactionNo},
		{"Type", string(t.Type)},
		{"Mode", string(t.Mode)},
		{"Bank", t.BankName},
		{"Amount", common.FormatAmount(profile.Currency, t.Amount)},
	}

	for _, r := range rows {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(44, 8, r.label, "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 8, r.value, "1", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write receipt: %w", err)
	}

	zap.L().Info("Exported transaction receipt",
		zap.String("path", path),
		zap.Int64("sr_no", t.SrNo))
	return nil
}
