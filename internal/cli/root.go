package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rpgo/savings-planner/internal/calculation"
)

var logLevel string

// NewRootCmd builds the savings-planner command tree.
func NewRootCmd() *cobra.Command {
	settings, err := LoadSettings()
	if err != nil {
		// Environment misconfiguration should not brick the CLI; fall back
		// to defaults and let the logger mention it later.
		settings = Settings{Format: "console", LogLevel: "warn"}
	}

	root := &cobra.Command{
		Use:   "savings-planner",
		Short: "Project the future value of a retirement savings plan",
		Long: `savings-planner projects the future value of a savings plan from an
initial deposit, annual contributions, a constant annual rate, and a horizon
in years, and can render a year-by-year schedule of contributions, interest,
and balance.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(newProjectCmd())
	root.AddCommand(newScheduleCmd(settings))
	root.AddCommand(newInitCmd())
	return root
}

// Execute runs the CLI and returns an exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// newEngine builds a projection engine with a console logger at the
// requested level.
func newEngine() *calculation.Engine {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	engine := calculation.NewEngine()
	engine.SetLogger(zerologAdapter{log: log})
	return engine
}
