package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/savings-planner/internal/domain"
)

// PlanDocument is the parsed and validated content of a plan file: the plan
// itself plus optional report preferences.
type PlanDocument struct {
	Plan   domain.PlanParameters
	Report ReportOptions
}

// ReportOptions carries presentation preferences from the plan file. All
// fields are optional; the CLI supplies defaults.
type ReportOptions struct {
	// Format names an output formatter ("console", "csv", "json" or an alias).
	Format string `yaml:"format"`
	// StartYear maps schedule rows to calendar years when non-zero.
	StartYear int `yaml:"start_year"`
	// Output is a file path for the rendered report; empty means stdout.
	Output string `yaml:"output"`
}

// planFile mirrors PlanParameters with plain YAML scalars. yaml.v3 does not
// invoke encoding.TextUnmarshaler, so decimal and timing fields are carried
// as strings and converted explicitly.
type planFile struct {
	Principal          string `yaml:"principal"`
	AnnualContribution string `yaml:"annual_contribution"`
	AnnualRate         string `yaml:"annual_rate"`
	Years              int    `yaml:"years"`
	Timing             string `yaml:"timing"`
}

// rawDocument is the on-disk shape of a plan file.
type rawDocument struct {
	Plan   planFile      `yaml:"plan"`
	Report ReportOptions `yaml:"report"`
}

// toPlan converts the raw file fields into plan parameters. Empty monetary
// fields default to zero; an empty timing defaults to "immediate".
func (pf planFile) toPlan() (domain.PlanParameters, error) {
	plan := domain.PlanParameters{Years: pf.Years}

	var err error
	if plan.Principal, err = parseAmount("principal", pf.Principal); err != nil {
		return domain.PlanParameters{}, err
	}
	if plan.AnnualContribution, err = parseAmount("annual_contribution", pf.AnnualContribution); err != nil {
		return domain.PlanParameters{}, err
	}
	if pf.AnnualRate == "" {
		return domain.PlanParameters{}, fmt.Errorf("annual_rate is required")
	}
	if plan.AnnualRate, err = parseAmount("annual_rate", pf.AnnualRate); err != nil {
		return domain.PlanParameters{}, err
	}

	if pf.Timing == "" {
		plan.Timing = domain.TimingImmediate
	} else if plan.Timing, err = domain.ParseContributionTiming(pf.Timing); err != nil {
		return domain.PlanParameters{}, err
	}

	return plan, nil
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return d, nil
}

// fromPlan converts plan parameters back into the raw file shape.
func fromPlan(p domain.PlanParameters) planFile {
	return planFile{
		Principal:          p.Principal.String(),
		AnnualContribution: p.AnnualContribution.String(),
		AnnualRate:         p.AnnualRate.String(),
		Years:              p.Years,
		Timing:             p.Timing.String(),
	}
}

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan document from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*PlanDocument, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a plan document from YAML bytes.
func (ip *InputParser) Parse(data []byte) (*PlanDocument, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	plan, err := raw.Plan.toPlan()
	if err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	doc := &PlanDocument{Plan: plan, Report: raw.Report}
	if err := ip.ValidateDocument(doc); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return doc, nil
}

// ValidateDocument validates a loaded plan document.
func (ip *InputParser) ValidateDocument(doc *PlanDocument) error {
	if err := doc.Plan.Validate(); err != nil {
		return err
	}
	if doc.Report.StartYear < 0 {
		return fmt.Errorf("report start_year must not be negative, got %d", doc.Report.StartYear)
	}
	return nil
}

// Marshal renders a plan document as YAML.
func (ip *InputParser) Marshal(doc *PlanDocument) ([]byte, error) {
	raw := rawDocument{Plan: fromPlan(doc.Plan), Report: doc.Report}
	return yaml.Marshal(raw)
}

// CreateExamplePlan returns a ready-to-run example plan document.
func (ip *InputParser) CreateExamplePlan() *PlanDocument {
	return &PlanDocument{
		Plan: domain.PlanParameters{
			Principal:          decimal.NewFromInt(1000),
			AnnualContribution: decimal.NewFromInt(5000),
			AnnualRate:         decimal.NewFromFloat(0.07),
			Years:              20,
			Timing:             domain.TimingDue,
		},
		Report: ReportOptions{
			Format: "console",
		},
	}
}
