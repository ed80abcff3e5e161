package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/savings-planner/internal/config"
)

func newInitCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			data, err := parser.Marshal(parser.CreateExamplePlan())
			if err != nil {
				return fmt.Errorf("failed to marshal example plan: %w", err)
			}
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example plan written to %s\n", outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "savings_plan.yaml", "destination file")
	return cmd
}
