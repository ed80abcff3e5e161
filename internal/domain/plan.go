package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PlanParameters describes a savings plan: an initial deposit, a fixed annual
// contribution, a constant annual growth rate, and a horizon in whole years.
// The struct is treated as immutable once constructed; calculations never
// modify it.
type PlanParameters struct {
	// Principal is the initial deposit, compounded independently of the
	// contribution stream.
	Principal decimal.Decimal `json:"principal"`

	// AnnualContribution is deposited once per year according to Timing.
	AnnualContribution decimal.Decimal `json:"annual_contribution"`

	// AnnualRate is a fraction, not a percentage: 0.07 means 7%.
	AnnualRate decimal.Decimal `json:"annual_rate"`

	// Years is the projection horizon. A zero horizon is valid and projects
	// the principal unchanged.
	Years int `json:"years"`

	// Timing controls whether contributions are made at the start or end of
	// each year. The zero value is TimingImmediate.
	Timing ContributionTiming `json:"timing"`
}

// Validate checks the plan against the supported input domain. Negative
// monetary inputs, negative horizons, non-positive rates, and unrecognized
// timing modes are rejected outright rather than producing mathematically
// surprising output.
func (p PlanParameters) Validate() error {
	if p.Principal.IsNegative() {
		return fmt.Errorf("principal %s: %w", p.Principal.StringFixed(2), ErrNegativeInput)
	}
	if p.AnnualContribution.IsNegative() {
		return fmt.Errorf("annual contribution %s: %w", p.AnnualContribution.StringFixed(2), ErrNegativeInput)
	}
	if p.Years < 0 {
		return fmt.Errorf("years %d: %w", p.Years, ErrNegativeInput)
	}
	if !p.AnnualRate.IsPositive() {
		return fmt.Errorf("annual rate %s: %w", p.AnnualRate.String(), ErrInvalidRate)
	}
	if !p.Timing.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTiming, int(p.Timing))
	}
	return nil
}

// YearRecord is one row of a projection schedule.
type YearRecord struct {
	// Year is the ordinal year index, 0..Years. Year 0 is the starting
	// position before any contribution.
	Year int `json:"year"`

	// Contribution is the plan's annual contribution, constant across rows.
	Contribution decimal.Decimal `json:"contribution"`

	// CumulativeContributions is the total contributed through this year.
	// Zero at year 0, then grows by Contribution each year.
	CumulativeContributions decimal.Decimal `json:"cumulative_contributions"`

	// Interest is the growth earned during this year beyond the
	// contribution itself. Zero at year 0 by convention.
	Interest decimal.Decimal `json:"interest"`

	// Balance is the projected value at the end of this year.
	Balance decimal.Decimal `json:"balance"`
}

// Schedule is an ordered year-by-year projection, indexed by year ascending.
// A schedule for an N-year plan has N+1 records.
type Schedule []YearRecord

// FinalBalance returns the balance of the last record, or zero for an empty
// schedule.
func (s Schedule) FinalBalance() decimal.Decimal {
	if len(s) == 0 {
		return decimal.Zero
	}
	return s[len(s)-1].Balance
}

// TotalContributions returns the cumulative contributions of the last record.
func (s Schedule) TotalContributions() decimal.Decimal {
	if len(s) == 0 {
		return decimal.Zero
	}
	return s[len(s)-1].CumulativeContributions
}

// TotalInterest returns the interest earned across the whole schedule: the
// final balance minus the principal and all contributions.
func (s Schedule) TotalInterest() decimal.Decimal {
	var total decimal.Decimal
	for _, rec := range s {
		total = total.Add(rec.Interest)
	}
	return total
}

// ProjectionReport bundles a plan, its schedule, and derived totals for the
// output layer.
type ProjectionReport struct {
	Plan PlanParameters `json:"plan"`

	// StartYear is the calendar year of year 0, or 0 when the report uses
	// ordinal years only.
	StartYear int `json:"start_year,omitempty"`

	Schedule Schedule `json:"schedule"`

	FinalBalance       decimal.Decimal `json:"final_balance"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalInterest      decimal.Decimal `json:"total_interest"`
}

// CalendarYear maps an ordinal year index to a calendar year when StartYear
// is set, otherwise it returns the index unchanged.
func (r *ProjectionReport) CalendarYear(year int) int {
	if r.StartYear == 0 {
		return year
	}
	return r.StartYear + year
}
