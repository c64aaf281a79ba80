// Package report computes the stateless assessment summaries: per-stage
// and per-module type totals, and MIMLO coverage. All functions are
// pure over the document; the caller picks which summary to render.
package report

import (
	"github.com/alexanderramin/provost/internal/domain"
)

// TypeTotal is one grouped row: how many assessments of a category and
// their summed weighting.
type TypeTotal struct {
	Category  Category
	Count     int
	Weighting int
}

// StageReport summarises assessment load for one stage of a version.
type StageReport struct {
	StageID   string
	StageName string
	Totals    []TypeTotal
}

// ModuleReport summarises one module's assessment mix.
type ModuleReport struct {
	ModuleID    string
	ModuleLabel string
	Totals      []TypeTotal
}

// CoverageReport lists a module's outcomes no assessment touches.
type CoverageReport struct {
	ModuleID    string
	ModuleLabel string
	Unassessed  []domain.MIMLO
}

// StageAssessmentTotals groups assessments by category for each stage
// of the given version, restricted to the modules assigned to that
// stage. Unknown version IDs yield nil.
func StageAssessmentTotals(p *domain.Programme, versionID string) []StageReport {
	v := p.VersionByID(versionID)
	if v == nil {
		return nil
	}
	var out []StageReport
	for si := range v.Stages {
		st := &v.Stages[si]
		acc := newAccumulator()
		for _, slot := range st.Slots {
			mod := p.ModuleByID(slot.ModuleID)
			if mod == nil {
				continue
			}
			for ai := range mod.Assessments {
				acc.add(&mod.Assessments[ai])
			}
		}
		out = append(out, StageReport{
			StageID:   st.ID,
			StageName: st.Name,
			Totals:    acc.totals(),
		})
	}
	return out
}

// ModuleAssessmentSummary groups assessments by category across the
// whole programme, one row per module in document order.
func ModuleAssessmentSummary(p *domain.Programme) []ModuleReport {
	var out []ModuleReport
	for mi := range p.Modules {
		mod := &p.Modules[mi]
		acc := newAccumulator()
		for ai := range mod.Assessments {
			acc.add(&mod.Assessments[ai])
		}
		out = append(out, ModuleReport{
			ModuleID:    mod.ID,
			ModuleLabel: mod.DisplayLabel(),
			Totals:      acc.totals(),
		})
	}
	return out
}

// UnassessedMIMLOs returns, per module, the outcomes not referenced by
// any assessment's coverage list. Modules with full coverage are
// omitted.
func UnassessedMIMLOs(p *domain.Programme) []CoverageReport {
	var out []CoverageReport
	for mi := range p.Modules {
		mod := &p.Modules[mi]
		var missing []domain.MIMLO
		for _, mlo := range mod.MIMLOs {
			covered := false
			for ai := range mod.Assessments {
				if mod.Assessments[ai].CoversMIMLO(mlo.ID) {
					covered = true
					break
				}
			}
			if !covered {
				missing = append(missing, mlo)
			}
		}
		if len(missing) > 0 {
			out = append(out, CoverageReport{
				ModuleID:    mod.ID,
				ModuleLabel: mod.DisplayLabel(),
				Unassessed:  missing,
			})
		}
	}
	return out
}

// accumulator tallies count and weighting per category.
type accumulator struct {
	counts     map[Category]int
	weightings map[Category]int
}

func newAccumulator() *accumulator {
	return &accumulator{
		counts:     make(map[Category]int),
		weightings: make(map[Category]int),
	}
}

func (a *accumulator) add(as *domain.Assessment) {
	c := Categorize(as.Type)
	a.counts[c]++
	a.weightings[c] += as.Weighting
}

// totals renders the tally in fixed category order, skipping empty
// buckets.
func (a *accumulator) totals() []TypeTotal {
	var out []TypeTotal
	for _, c := range categoryOrder {
		if a.counts[c] == 0 {
			continue
		}
		out = append(out, TypeTotal{Category: c, Count: a.counts[c], Weighting: a.weightings[c]})
	}
	return out
}
