package export

import (
	"fmt"
	"io"

	"bank-ledger-go/internal/models"

	"github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"
)

// ExportChart renders a PNG bar chart of total amount per transaction
// type. An empty totals slice is an error; the chart library cannot
// render zero bars.
func ExportChart(w io.Writer, totals []models.TypeTotal) error {
	if len(totals) == 0 {
		return fmt.Errorf("no transactions to chart")
	}

	bars := make([]chart.Value, 0, len(totals))
	for _, tt := range totals {
		bars = append(bars, chart.Value{
			Label: string(tt.Type),
			Value: tt.Total.InexactFloat64(),
		})
	}

	graph := chart.BarChart{
		Title:    "Amount by Transaction Type",
		Height:   512,
		BarWidth: 80,
		Bars:     bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	zap.L().Info("Exported transaction chart", zap.Int("bars", len(bars)))
	return nil
}
