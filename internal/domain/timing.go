package domain

import "fmt"

// ContributionTiming identifies when the annual contribution is deposited
// within each year. It is a closed enumeration: any value outside the two
// declared constants fails validation rather than silently skipping the
// annuity term.
type ContributionTiming int

const (
	// TimingImmediate deposits the contribution at the end of each year
	// (ordinary annuity); the final contribution earns no interest.
	TimingImmediate ContributionTiming = iota

	// TimingDue deposits the contribution at the start of each year
	// (annuity due); every contribution earns one extra year of interest
	// compared to TimingImmediate.
	TimingDue
)

// Valid reports whether t is one of the declared timing modes.
func (t ContributionTiming) Valid() bool {
	return t == TimingImmediate || t == TimingDue
}

// String returns the canonical lowercase name of the timing mode.
func (t ContributionTiming) String() string {
	switch t {
	case TimingImmediate:
		return "immediate"
	case TimingDue:
		return "due"
	default:
		return fmt.Sprintf("timing(%d)", int(t))
	}
}

// ParseContributionTiming converts a config string into a timing mode.
func ParseContributionTiming(s string) (ContributionTiming, error) {
	switch s {
	case "immediate", "end":
		return TimingImmediate, nil
	case "due", "start":
		return TimingDue, nil
	default:
		return 0, fmt.Errorf("%w: %q (want \"immediate\" or \"due\")", ErrUnknownTiming, s)
	}
}

// MarshalText implements encoding.TextMarshaler so the mode serializes as
// its name in YAML and JSON documents.
func (t ContributionTiming) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTiming, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ContributionTiming) UnmarshalText(text []byte) error {
	parsed, err := ParseContributionTiming(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
