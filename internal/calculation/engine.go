package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/savings-planner/internal/domain"
)

// Engine orchestrates plan projections. The computation itself lives in the
// pure package functions; the engine adds logging and report assembly for
// callers such as the CLI.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. A nil logger resets to no-op.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Project returns the single-point future value of the plan.
func (e *Engine) Project(p domain.PlanParameters) (decimal.Decimal, error) {
	value, err := FutureValue(p)
	if err != nil {
		e.Logger.Errorf("projection failed: %v", err)
		return decimal.Zero, err
	}
	e.Logger.Debugf("projected %d years of %s/yr at %s on %s: %s",
		p.Years, p.AnnualContribution.StringFixed(2), p.AnnualRate.String(),
		p.Principal.StringFixed(2), value.StringFixed(2))
	return value, nil
}

// BuildSchedule returns the year-by-year projection for the plan.
func (e *Engine) BuildSchedule(p domain.PlanParameters) (domain.Schedule, error) {
	schedule, err := BuildSchedule(p)
	if err != nil {
		e.Logger.Errorf("schedule failed: %v", err)
		return nil, err
	}
	e.Logger.Debugf("built %d-row schedule, final balance %s",
		len(schedule), schedule.FinalBalance().StringFixed(2))
	return schedule, nil
}

// BuildReport builds the schedule and wraps it with derived totals for the
// output layer. startYear of 0 leaves the report in ordinal years.
func (e *Engine) BuildReport(p domain.PlanParameters, startYear int) (*domain.ProjectionReport, error) {
	schedule, err := e.BuildSchedule(p)
	if err != nil {
		return nil, err
	}
	return &domain.ProjectionReport{
		Plan:               p,
		StartYear:          startYear,
		Schedule:           schedule,
		FinalBalance:       schedule.FinalBalance(),
		TotalContributions: schedule.TotalContributions(),
		TotalInterest:      schedule.TotalInterest(),
	}, nil
}
