// Package validate checks a programme document for consistency and
// completeness. Validate is pure and total: every rule runs on every
// call, all findings are returned in declared rule order, and nothing
// is ever thrown or short-circuited.
package validate

import (
	"fmt"

	"github.com/alexanderramin/provost/internal/domain"
)

// PLO count guidance bounds. Advisory only.
const (
	minAdvisedPLOs = 5
	maxAdvisedPLOs = 15
)

// Validate runs every rule against the document and returns the
// accumulated flags. Rule order is fixed: identity, structural,
// per-version, per-stage, then outcome/mapping rules.
func Validate(p *domain.Programme) []Flag {
	var flags []Flag
	flags = append(flags, identityRules(p)...)
	flags = append(flags, structuralRules(p)...)
	flags = append(flags, versionRules(p)...)
	flags = append(flags, stageRules(p)...)
	flags = append(flags, outcomeRules(p)...)
	return flags
}

func identityRules(p *domain.Programme) []Flag {
	var flags []Flag
	if p.Title == "" {
		flags = append(flags, Flag{SeverityError, "programme title is required", domain.StepIdentity})
	}
	if p.School == "" {
		flags = append(flags, Flag{SeverityWarn, "no school or faculty named", domain.StepIdentity})
	}
	if p.NFQLevel < domain.MinNFQLevel || p.NFQLevel > domain.MaxNFQLevel {
		flags = append(flags, Flag{
			SeverityError,
			fmt.Sprintf("NFQ level %d is outside the supported range %d-%d", p.NFQLevel, domain.MinNFQLevel, domain.MaxNFQLevel),
			domain.StepIdentity,
		})
	}
	if len(p.StandardRefs) == 0 {
		flags = append(flags, Flag{SeverityWarn, "no award standard selected; traceability cannot be checked", domain.StepStandards})
	}
	if len(p.StandardRefs) > 2 {
		flags = append(flags, Flag{
			SeverityError,
			fmt.Sprintf("at most 2 award standards may be referenced, found %d", len(p.StandardRefs)),
			domain.StepStandards,
		})
	}
	return flags
}

func structuralRules(p *domain.Programme) []Flag {
	var flags []Flag
	if len(p.Modules) == 0 {
		flags = append(flags, Flag{SeverityWarn, "programme has no modules yet", domain.StepModules})
	}
	// Credit reconciliation only applies once a total has been set;
	// a fresh document must not produce a spurious mismatch.
	if p.TotalCredits > 0 {
		if sum := p.ModuleCreditSum(); sum != p.TotalCredits {
			flags = append(flags, Flag{
				SeverityError,
				fmt.Sprintf("module credits sum to %d but the programme total is %d", sum, p.TotalCredits),
				domain.StepModules,
			})
		}
	}
	for i := range p.Modules {
		m := &p.Modules[i]
		if m.Title == "" && m.Code == "" {
			flags = append(flags, Flag{
				SeverityError,
				fmt.Sprintf("module %d has neither code nor title", i+1),
				domain.StepModules,
			})
		}
		if m.Credits <= 0 {
			flags = append(flags, Flag{
				SeverityWarn,
				fmt.Sprintf("module %s has no credit value", m.DisplayLabel()),
				domain.StepModules,
			})
		}
		if len(m.MIMLOs) == 0 {
			flags = append(flags, Flag{
				SeverityWarn,
				fmt.Sprintf("module %s has no learning outcomes", m.DisplayLabel()),
				domain.StepModules,
			})
		}
		if ws := m.WeightingSum(); len(m.Assessments) > 0 && ws != 100 {
			flags = append(flags, Flag{
				SeverityWarn,
				fmt.Sprintf("assessment weightings in %s sum to %d%%, expected 100%%", m.DisplayLabel(), ws),
				domain.StepAssessment,
			})
		}
	}
	return flags
}

func versionRules(p *domain.Programme) []Flag {
	var flags []Flag
	if len(p.Versions) == 0 {
		flags = append(flags, Flag{SeverityWarn, "no delivery version defined", domain.StepVersions})
	}
	for i := range p.Versions {
		v := &p.Versions[i]
		label := v.Label
		if label == "" {
			label = fmt.Sprintf("version %d", i+1)
		}
		if v.Label == "" {
			flags = append(flags, Flag{
				SeverityError,
				fmt.Sprintf("%s has no label", label),
				domain.StepVersions,
			})
		}
		if !domain.ValidModalities[string(v.Modality)] {
			flags = append(flags, Flag{
				SeverityError,
				fmt.Sprintf("%s has unknown delivery modality %q", label, v.Modality),
				domain.StepVersions,
			})
		}
		if total := v.Pattern.Total(); total != 100 {
			flags = append(flags, Flag{
				SeverityError,
				fmt.Sprintf("%s delivery pattern sums to %d%%, must be exactly 100%%", label, total),
				domain.StepVersions,
			})
		}
		if len(v.Intakes) == 0 {
			flags = append(flags, Flag{
				SeverityWarn,
				fmt.Sprintf("%s lists no intake periods", label),
				domain.StepVersions,
			})
		}
		if v.CohortSize <= 0 {
			flags = append(flags, Flag{
				SeverityWarn,
				fmt.Sprintf("%s has no target cohort size", label),
				domain.StepVersions,
			})
		}
	}
	return flags
}

func stageRules(p *domain.Programme) []Flag {
	var flags []Flag
	for vi := range p.Versions {
		v := &p.Versions[vi]
		for si := range v.Stages {
			st := &v.Stages[si]
			name := st.Name
			if name == "" {
				name = fmt.Sprintf("stage %d", st.Sequence)
			}
			// Stage targets are aspirational, so a mismatch is a
			// warning rather than an error.
			if st.CreditsTarget > 0 {
				if got := st.AssignedCredits(p); got != st.CreditsTarget {
					flags = append(flags, Flag{
						SeverityWarn,
						fmt.Sprintf("%s (%s) has %d assigned credits against a target of %d", name, v.Label, got, st.CreditsTarget),
						domain.StepStages,
					})
				}
			}
			if st.ExitAward && st.ExitAwardTitle == "" {
				flags = append(flags, Flag{
					SeverityWarn,
					fmt.Sprintf("%s (%s) is flagged as an exit award but has no award title", name, v.Label),
					domain.StepStages,
				})
			}
		}
	}
	return flags
}

func outcomeRules(p *domain.Programme) []Flag {
	var flags []Flag
	if len(p.PLOs) == 0 {
		flags = append(flags, Flag{SeverityWarn, "no programme learning outcomes authored", domain.StepOutcomes})
		return flags
	}

	unmapped := 0
	for i := range p.PLOs {
		if len(p.PLOModuleMap[p.PLOs[i].ID]) == 0 {
			unmapped++
		}
	}
	if unmapped > 0 {
		flags = append(flags, Flag{
			SeverityError,
			fmt.Sprintf("%d programme learning outcome(s) are not delivered by any module", unmapped),
			domain.StepOutcomes,
		})
	}

	if len(p.PLOs) < minAdvisedPLOs {
		flags = append(flags, Flag{
			SeverityWarn,
			fmt.Sprintf("only %d programme outcomes; submissions usually carry at least %d", len(p.PLOs), minAdvisedPLOs),
			domain.StepOutcomes,
		})
	}
	if len(p.PLOs) > maxAdvisedPLOs {
		flags = append(flags, Flag{
			SeverityWarn,
			fmt.Sprintf("%d programme outcomes; more than %d is hard to evidence", len(p.PLOs), maxAdvisedPLOs),
			domain.StepOutcomes,
		})
	}
	return flags
}
