package trace

// Status classifies how far a traceability row got before hitting a
// missing link. Severity order, worst first: standard_gap (a required
// criterion/thread with zero authored intent anywhere), outcome_gap
// (a PLO with no modules, or a module with no outcomes),
// assessment_gap (an authored outcome no assessment touches), covered.
type Status string

const (
	StatusCovered       Status = "covered"
	StatusAssessmentGap Status = "assessment_gap"
	StatusOutcomeGap    Status = "outcome_gap"
	StatusStandardGap   Status = "standard_gap"
)

// SeverityRank orders statuses worst-first for sorting and styling.
func SeverityRank(s Status) int {
	switch s {
	case StatusStandardGap:
		return 0
	case StatusOutcomeGap:
		return 1
	case StatusAssessmentGap:
		return 2
	default:
		return 3
	}
}

// Row threads one standard criterion/thread through a PLO, module,
// MIMLO and assessment. Gap rows leave the tiers past the break empty.
type Row struct {
	Status Status

	StandardRef string
	Criterion   string
	Thread      string

	PLOID   string
	PLOText string

	ModuleID    string
	ModuleLabel string

	MIMLOID   string
	MIMLOText string

	AssessmentID    string
	AssessmentTitle string
}

// StandardLabel renders the standard-tier cell: "criterion / thread",
// or "(not mapped)" when the PLO carries no standard mapping.
func (r Row) StandardLabel() string {
	if r.Criterion == "" && r.Thread == "" {
		return "(not mapped)"
	}
	return r.Criterion + " / " + r.Thread
}
