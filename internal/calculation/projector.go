package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/savings-planner/internal/domain"
)

// centPlaces is the rounding precision for all projected currency amounts.
const centPlaces = 2

// FutureValue computes the projected value of a plan at the end of its
// horizon using the closed-form compound interest and annuity formulas:
//
//	compounded = principal * (1+r)^n
//	annuity    = contribution * ((1+r)^n - 1) / r         (immediate)
//	annuity    = contribution * ((1+r)^n - 1) / r * (1+r) (due)
//
// The result is rounded to cents with round-half-away-from-zero (the
// behavior of decimal.Round). A zero-year horizon returns the principal
// rounded; the annuity term vanishes since (1+r)^0 - 1 == 0.
//
// The function is pure and deterministic. Validation runs before any
// arithmetic, so a zero rate surfaces as domain.ErrInvalidRate instead of a
// division by zero.
func FutureValue(p domain.PlanParameters) (decimal.Decimal, error) {
	if err := p.Validate(); err != nil {
		return decimal.Zero, err
	}

	one := decimal.NewFromInt(1)
	growth := one.Add(p.AnnualRate)
	factor := growth.Pow(decimal.NewFromInt(int64(p.Years)))

	compounded := p.Principal.Mul(factor)
	annuityFactor := factor.Sub(one).Div(p.AnnualRate)
	annuity := p.AnnualContribution.Mul(annuityFactor)
	if p.Timing == domain.TimingDue {
		annuity = annuity.Mul(growth)
	}

	return compounded.Add(annuity).Round(centPlaces), nil
}
