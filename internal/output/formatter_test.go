package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/savings-planner/internal/domain"
)

// sampleReport is a hand-computed 2-year plan: $100 principal, $50/yr at 10%
// with end-of-year contributions.
func sampleReport() *domain.ProjectionReport {
	plan := domain.PlanParameters{
		Principal:          decimal.NewFromInt(100),
		AnnualContribution: decimal.NewFromInt(50),
		AnnualRate:         decimal.NewFromFloat(0.10),
		Years:              2,
		Timing:             domain.TimingImmediate,
	}
	schedule := domain.Schedule{
		{Year: 0, Contribution: plan.AnnualContribution, CumulativeContributions: decimal.Zero, Interest: decimal.Zero, Balance: decimal.NewFromInt(100)},
		{Year: 1, Contribution: plan.AnnualContribution, CumulativeContributions: decimal.NewFromInt(50), Interest: decimal.NewFromInt(10), Balance: decimal.NewFromInt(160)},
		{Year: 2, Contribution: plan.AnnualContribution, CumulativeContributions: decimal.NewFromInt(100), Interest: decimal.NewFromInt(16), Balance: decimal.NewFromInt(226)},
	}
	return &domain.ProjectionReport{
		Plan:               plan,
		Schedule:           schedule,
		FinalBalance:       schedule.FinalBalance(),
		TotalContributions: schedule.TotalContributions(),
		TotalInterest:      schedule.TotalInterest(),
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"console", "console"},
		{"text", "console"},
		{"table", "console"},
		{" CSV ", "csv"},
		{"csv-schedule", "csv"},
		{"json", "json"},
		{"json-pretty", "json"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.input)
		require.NotNil(t, f, "formatter for %q", tt.input)
		assert.Equal(t, tt.want, f.Name(), "input %q", tt.input)
	}

	assert.Nil(t, GetFormatterByName("xml"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json"}, AvailableFormatterNames())
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "SAVINGS PLAN PROJECTION")
	assert.Contains(t, text, "Final Balance:       $226.00")
	assert.Contains(t, text, "Total Contributions: $100.00")
	assert.Contains(t, text, "Total Interest:      $26.00")
	assert.Contains(t, text, "10.00%")
}

func TestConsoleFormatterCalendarYears(t *testing.T) {
	report := sampleReport()
	report.StartYear = 2026

	data, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2028", "final row should show a calendar year")
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per year")

	assert.Equal(t, []string{"Year", "Contribution", "CumulativeContributions", "Interest", "Balance"}, rows[0])
	assert.Equal(t, []string{"0", "50.00", "0.00", "0.00", "100.00"}, rows[1])
	assert.Equal(t, []string{"2", "50.00", "100.00", "16.00", "226.00"}, rows[3])
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	report := sampleReport()
	data, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded domain.ProjectionReport
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.True(t, decoded.FinalBalance.Equal(report.FinalBalance))
	assert.Equal(t, domain.TimingImmediate, decoded.Plan.Timing)
	assert.Len(t, decoded.Schedule, 3)
	assert.True(t, decoded.Schedule[2].Interest.Equal(report.Schedule[2].Interest))
}

func TestWriteFormatted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	written, err := WriteFormatted(CSVFormatter{}, sampleReport(), path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Year,"))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "7.00%", FormatRate(decimal.NewFromFloat(0.07)))
}
