package validate

import "github.com/alexanderramin/provost/internal/domain"

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warn"
)

// Flag is one validation finding. Flags are advisory: nothing in the
// tool refuses to proceed because of one.
type Flag struct {
	Severity Severity
	Message  string
	Step     domain.Step
}

// Errors returns the subset of flags with error severity.
func Errors(flags []Flag) []Flag {
	var out []Flag
	for _, f := range flags {
		if f.Severity == SeverityError {
			out = append(out, f)
		}
	}
	return out
}

// Warnings returns the subset of flags with warn severity.
func Warnings(flags []Flag) []Flag {
	var out []Flag
	for _, f := range flags {
		if f.Severity == SeverityWarn {
			out = append(out, f)
		}
	}
	return out
}

// GroupByStep buckets flags by wizard step, preserving flag order
// within each bucket. Step order follows domain.AllSteps.
func GroupByStep(flags []Flag) ([]domain.Step, map[domain.Step][]Flag) {
	grouped := make(map[domain.Step][]Flag)
	for _, f := range flags {
		grouped[f.Step] = append(grouped[f.Step], f)
	}
	var order []domain.Step
	for _, s := range domain.AllSteps {
		if len(grouped[s]) > 0 {
			order = append(order, s)
		}
	}
	return order, grouped
}
