package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/pkg/money"
)

// planFlags holds the raw flag values shared by project and schedule.
type planFlags struct {
	principal    string
	contribution string
	rate         string
	years        int
	timing       string
}

func (pf *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&pf.principal, "principal", "p", "0", "initial deposit")
	cmd.Flags().StringVarP(&pf.contribution, "contribution", "c", "0", "annual contribution")
	cmd.Flags().StringVarP(&pf.rate, "rate", "r", "", "annual rate as a fraction (0.07 means 7%)")
	cmd.Flags().IntVarP(&pf.years, "years", "y", 0, "projection horizon in years")
	cmd.Flags().StringVarP(&pf.timing, "timing", "t", "due", "contribution timing: immediate or due")
}

// toPlan converts flag values into validated plan parameters.
func (pf *planFlags) toPlan() (domain.PlanParameters, error) {
	principal, err := money.FromString(pf.principal)
	if err != nil {
		return domain.PlanParameters{}, fmt.Errorf("invalid principal %q: %w", pf.principal, err)
	}
	contribution, err := money.FromString(pf.contribution)
	if err != nil {
		return domain.PlanParameters{}, fmt.Errorf("invalid contribution %q: %w", pf.contribution, err)
	}
	rate, err := decimal.NewFromString(pf.rate)
	if err != nil {
		return domain.PlanParameters{}, fmt.Errorf("invalid rate %q: %w", pf.rate, err)
	}
	timing, err := domain.ParseContributionTiming(pf.timing)
	if err != nil {
		return domain.PlanParameters{}, err
	}

	plan := domain.PlanParameters{
		Principal:          principal.Decimal,
		AnnualContribution: contribution.Decimal,
		AnnualRate:         rate,
		Years:              pf.years,
		Timing:             timing,
	}
	if err := plan.Validate(); err != nil {
		return domain.PlanParameters{}, err
	}
	return plan, nil
}

func newProjectCmd() *cobra.Command {
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the projected future value of a plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := flags.toPlan()
			if err != nil {
				return err
			}
			value, err := newEngine().Project(plan)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), money.FromDecimal(value).Format())
			return nil
		},
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}
