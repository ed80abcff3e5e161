package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rpgo/savings-planner/internal/domain"
)

// BuildSchedule produces the year-by-year projection for a plan: one record
// per year from 0 through p.Years inclusive.
//
// Each year's balance is recomputed from the closed-form FutureValue rather
// than advanced incrementally. The horizon is small, so the repeated
// exponentiation is cheap, and recomputing keeps every row numerically
// identical to a standalone FutureValue call at that year; incremental
// accumulation of rounded intermediates can drift from the closed form.
//
// Year 0 carries zero interest and zero cumulative contributions. For later
// years, interest is the balance growth not explained by the contribution:
//
//	interest[y] = balance[y] - balance[y-1] - contribution
//
// On any projection error the schedule is abandoned; no partial schedule is
// returned.
func BuildSchedule(p domain.PlanParameters) (domain.Schedule, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	schedule := make(domain.Schedule, 0, p.Years+1)
	cumulative := decimal.Zero
	prevBalance := decimal.Zero

	for year := 0; year <= p.Years; year++ {
		at := p
		at.Years = year
		balance, err := FutureValue(at)
		if err != nil {
			return nil, fmt.Errorf("projecting year %d: %w", year, err)
		}

		interest := decimal.Zero
		if year > 0 {
			cumulative = cumulative.Add(p.AnnualContribution)
			interest = balance.Sub(prevBalance).Sub(p.AnnualContribution)
		}

		schedule = append(schedule, domain.YearRecord{
			Year:                    year,
			Contribution:            p.AnnualContribution,
			CumulativeContributions: cumulative,
			Interest:                interest,
			Balance:                 balance,
		})
		prevBalance = balance
	}

	return schedule, nil
}
