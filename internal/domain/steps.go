package domain

// Step identifies one page of the authoring wizard. Flags refer to
// steps so the to-do summary can group findings by page.
type Step string

const (
	StepIdentity   Step = "identity"
	StepStandards  Step = "standards"
	StepOutcomes   Step = "outcomes"
	StepModules    Step = "modules"
	StepVersions   Step = "versions"
	StepStages     Step = "stages"
	StepAssessment Step = "assessment"
	StepEffort     Step = "effort"
	StepReading    Step = "reading"
	StepReview     Step = "review"
)

// AllSteps is the full wizard sequence in authoring order.
var AllSteps = []Step{
	StepIdentity,
	StepStandards,
	StepOutcomes,
	StepModules,
	StepVersions,
	StepStages,
	StepAssessment,
	StepEffort,
	StepReading,
	StepReview,
}

// moduleEditorSteps is the subset a module editor may touch: module
// content only, never programme identity, versions or outcomes.
var moduleEditorSteps = map[Step]bool{
	StepModules:    true,
	StepAssessment: true,
	StepEffort:     true,
	StepReading:    true,
	StepReview:     true,
}

// VisibleSteps filters the step sequence for an editor mode. Owner mode
// sees everything; module editors see module-scoped steps only. Order
// is preserved.
func VisibleSteps(mode EditorMode, steps []Step) []Step {
	if mode == ModeOwner {
		out := make([]Step, len(steps))
		copy(out, steps)
		return out
	}
	var out []Step
	for _, s := range steps {
		if moduleEditorSteps[s] {
			out = append(out, s)
		}
	}
	return out
}

// StepTitle returns the human label for a wizard step.
func StepTitle(s Step) string {
	switch s {
	case StepIdentity:
		return "Programme Identity"
	case StepStandards:
		return "Award Standards"
	case StepOutcomes:
		return "Learning Outcomes"
	case StepModules:
		return "Modules"
	case StepVersions:
		return "Delivery Versions"
	case StepStages:
		return "Stages"
	case StepAssessment:
		return "Assessment Strategy"
	case StepEffort:
		return "Learner Effort"
	case StepReading:
		return "Reading Lists"
	case StepReview:
		return "Review"
	default:
		return string(s)
	}
}
