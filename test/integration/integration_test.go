package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/output"
)

// TestPlanFileToReport runs the full pipeline: plan file -> projection ->
// every formatter.
func TestPlanFileToReport(t *testing.T) {
	parser := config.NewInputParser()
	doc, err := parser.LoadFromFile("testdata/example_plan.yaml")
	require.NoError(t, err)

	assert.Equal(t, domain.TimingDue, doc.Plan.Timing)
	assert.Equal(t, 2026, doc.Report.StartYear)

	engine := calculation.NewEngine()
	report, err := engine.BuildReport(doc.Plan, doc.Report.StartYear)
	require.NoError(t, err)

	assert.Equal(t, "223195.57", report.FinalBalance.StringFixed(2))
	assert.Equal(t, "100000.00", report.TotalContributions.StringFixed(2))
	require.Len(t, report.Schedule, 21)
	assert.Equal(t, "152153.25", report.Schedule[16].Balance.StringFixed(2))
	assert.Equal(t, "9953.95", report.Schedule[16].Interest.StringFixed(2))
	assert.Equal(t, "14601.58", report.Schedule[20].Interest.StringFixed(2))

	for _, name := range output.AvailableFormatterNames() {
		formatter := output.GetFormatterByName(name)
		require.NotNil(t, formatter, "formatter %s", name)
		data, err := formatter.Format(report)
		require.NoError(t, err, "formatter %s", name)
		assert.NotEmpty(t, data, "formatter %s", name)
	}
}

// TestReportFileOutput writes a formatted report to disk the way the
// schedule command does.
func TestReportFileOutput(t *testing.T) {
	parser := config.NewInputParser()
	doc, err := parser.LoadFromFile("testdata/example_plan.yaml")
	require.NoError(t, err)

	report, err := calculation.NewEngine().BuildReport(doc.Plan, doc.Report.StartYear)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "projection.json")
	written, err := output.WriteFormatted(output.JSONFormatter{}, report, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)
}

// TestSingleProjectionMatchesSchedule cross-checks the two public
// operations: the standalone projection must equal the schedule's final
// balance.
func TestSingleProjectionMatchesSchedule(t *testing.T) {
	parser := config.NewInputParser()
	doc, err := parser.LoadFromFile("testdata/example_plan.yaml")
	require.NoError(t, err)

	engine := calculation.NewEngine()
	value, err := engine.Project(doc.Plan)
	require.NoError(t, err)

	schedule, err := engine.BuildSchedule(doc.Plan)
	require.NoError(t, err)

	assert.True(t, value.Equal(schedule.FinalBalance()),
		"project %s != schedule final %s", value.StringFixed(2), schedule.FinalBalance().StringFixed(2))
}
