package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/output"
)

func newScheduleCmd(settings Settings) *cobra.Command {
	var (
		flags     planFlags
		inputFile string
		format    string
		outFile   string
		startYear int
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Render the year-by-year projection schedule",
		Long: `schedule builds a year-by-year report of contributions, interest, and
balance. Plan parameters come either from flags or from a YAML plan file
(--input); flag values are ignored when a plan file is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				plan domain.PlanParameters
				err  error
			)

			if inputFile != "" {
				doc, loadErr := config.NewInputParser().LoadFromFile(inputFile)
				if loadErr != nil {
					return loadErr
				}
				plan = doc.Plan
				if !cmd.Flags().Changed("format") && doc.Report.Format != "" {
					format = doc.Report.Format
				}
				if !cmd.Flags().Changed("start-year") && doc.Report.StartYear != 0 {
					startYear = doc.Report.StartYear
				}
				if !cmd.Flags().Changed("output") && doc.Report.Output != "" {
					outFile = doc.Report.Output
				}
			} else {
				plan, err = flags.toPlan()
				if err != nil {
					return err
				}
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (available: %v)", format, output.AvailableFormatterNames())
			}

			report, err := newEngine().BuildReport(plan, startYear)
			if err != nil {
				return err
			}

			if outFile != "" {
				written, err := output.WriteFormatted(formatter, report, outFile)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", written)
				return nil
			}

			data, err := formatter.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML plan file")
	cmd.Flags().StringVarP(&format, "format", "f", settings.Format, "output format (console, csv, json)")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write report to file instead of stdout")
	cmd.Flags().IntVar(&startYear, "start-year", 0, "calendar year of year 0 (0 keeps ordinal years)")
	return cmd
}
