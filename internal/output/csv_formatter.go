package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/savings-planner/internal/domain"
)

// CSVFormatter exports the schedule as CSV, one row per year.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Contribution", "CumulativeContributions", "Interest", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, rec := range report.Schedule {
		row := []string{
			strconv.Itoa(report.CalendarYear(rec.Year)),
			rec.Contribution.StringFixed(2),
			rec.CumulativeContributions.StringFixed(2),
			rec.Interest.StringFixed(2),
			rec.Balance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
