// Package trace builds the traceability matrix: every path from an
// award-standard criterion through programme outcomes, modules and
// module outcomes down to the assessment that evidences it, with a
// terminal gap status wherever a link is missing.
package trace

import (
	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/standards"
)

// Build walks the programme's alignment graph and returns the row
// list. Standard-gap rows — checklist pairs no PLO ever claimed — are
// prepended since they are the worst category of omission. A nil
// catalog skips the checklist sweep; everything else still runs.
func Build(p *domain.Programme, cat *standards.Catalog) []Row {
	covered := make(map[string]map[standards.Pair]bool)
	mark := func(ref string, pair standards.Pair) {
		if ref == "" {
			return
		}
		if covered[ref] == nil {
			covered[ref] = make(map[standards.Pair]bool)
		}
		covered[ref][pair] = true
	}

	var rows []Row
	for pi := range p.PLOs {
		plo := &p.PLOs[pi]

		mappings := plo.Mappings
		if len(mappings) == 0 {
			// Placeholder so an unmapped PLO still yields rows.
			mappings = []domain.StandardMapping{{}}
		}

		for _, sm := range mappings {
			mark(sm.StandardRef, standards.Pair{Criterion: sm.Criterion, Thread: sm.Thread})
			rows = append(rows, ploRows(p, plo, sm)...)
		}
	}

	var gaps []Row
	if cat != nil {
		for _, ref := range p.StandardRefs {
			for _, pair := range cat.Checklist(ref, p.NFQLevel) {
				if !covered[ref][pair] {
					gaps = append(gaps, Row{
						Status:      StatusStandardGap,
						StandardRef: ref,
						Criterion:   pair.Criterion,
						Thread:      pair.Thread,
					})
				}
			}
		}
	}
	return append(gaps, rows...)
}

// ploRows resolves one (PLO, standard mapping) pair down through
// modules, MIMLOs and assessments.
func ploRows(p *domain.Programme, plo *domain.PLO, sm domain.StandardMapping) []Row {
	base := Row{
		StandardRef: sm.StandardRef,
		Criterion:   sm.Criterion,
		Thread:      sm.Thread,
		PLOID:       plo.ID,
		PLOText:     plo.Text,
	}

	moduleIDs := p.MappedModules(plo.ID)
	if len(moduleIDs) == 0 {
		r := base
		r.Status = StatusOutcomeGap
		return []Row{r}
	}

	var rows []Row
	for _, modID := range moduleIDs {
		mod := p.ModuleByID(modID)
		if mod == nil {
			// Dangling reference; removal ops should prevent this,
			// but a hand-edited import can still contain one.
			r := base
			r.Status = StatusOutcomeGap
			r.ModuleID = modID
			r.ModuleLabel = modID
			rows = append(rows, r)
			continue
		}

		modBase := base
		modBase.ModuleID = mod.ID
		modBase.ModuleLabel = mod.DisplayLabel()

		if len(mod.MIMLOs) == 0 {
			r := modBase
			r.Status = StatusOutcomeGap
			rows = append(rows, r)
			continue
		}

		for mi := range mod.MIMLOs {
			mlo := &mod.MIMLOs[mi]
			mloBase := modBase
			mloBase.MIMLOID = mlo.ID
			mloBase.MIMLOText = mlo.Text

			found := false
			for ai := range mod.Assessments {
				a := &mod.Assessments[ai]
				if !a.CoversMIMLO(mlo.ID) {
					continue
				}
				found = true
				r := mloBase
				r.Status = StatusCovered
				r.AssessmentID = a.ID
				r.AssessmentTitle = a.Title
				rows = append(rows, r)
			}
			if !found {
				r := mloBase
				r.Status = StatusAssessmentGap
				rows = append(rows, r)
			}
		}
	}
	return rows
}
