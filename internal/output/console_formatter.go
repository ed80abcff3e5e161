package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/savings-planner/internal/domain"
)

// ConsoleFormatter renders the projection as a plain-text table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SAVINGS PLAN PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Principal:    %s\n", FormatCurrency(report.Plan.Principal))
	fmt.Fprintf(&buf, "Contribution: %s/yr (%s)\n", FormatCurrency(report.Plan.AnnualContribution), report.Plan.Timing)
	fmt.Fprintf(&buf, "Rate:         %s over %d years\n", FormatRate(report.Plan.AnnualRate), report.Plan.Years)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%6s %16s %18s %16s %18s\n", "Year", "Contribution", "Contributed", "Interest", "Balance")
	for _, rec := range report.Schedule {
		fmt.Fprintf(&buf, "%6d %16s %18s %16s %18s\n",
			report.CalendarYear(rec.Year),
			FormatCurrency(rec.Contribution),
			FormatCurrency(rec.CumulativeContributions),
			FormatCurrency(rec.Interest),
			FormatCurrency(rec.Balance),
		)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Final Balance:       %s\n", FormatCurrency(report.FinalBalance))
	fmt.Fprintf(&buf, "Total Contributions: %s\n", FormatCurrency(report.TotalContributions))
	fmt.Fprintf(&buf, "Total Interest:      %s\n", FormatCurrency(report.TotalInterest))
	return buf.Bytes(), nil
}
