package validate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanProgramme builds the reference scenario: 60 credits, one module
// carrying them all, one mapped PLO, one on-site version with the full
// pattern on campus.
func cleanProgramme() *domain.Programme {
	p := domain.NewProgramme("prog-1")
	p.Title = "BSc Computing"
	p.School = "School of Informatics"
	p.NFQLevel = 7
	p.TotalCredits = 60
	p.StandardRefs = []string{"computing-2014"}

	m := domain.NewModule("mod-1", "CS101", "Programming 1", 60)
	m.MIMLOs = append(m.MIMLOs, domain.MIMLO{ID: "mlo-1", Text: "Use loops"})
	a := domain.NewAssessment("as-1", "Project", "project", 100)
	a.Covers = []string{"mlo-1"}
	m.Assessments = append(m.Assessments, a)
	p.Modules = append(p.Modules, m)

	p.PLOs = append(p.PLOs, domain.NewPLO("plo-1", "Build software systems"))
	p.MapPLO("plo-1", "mod-1")

	v := domain.NewVersion("ver-1", "Full-time")
	v.Intakes = []string{"September"}
	v.CohortSize = 40
	v.Pattern = domain.DeliveryPattern{SyncPct: 0, AsyncPct: 0, CampusPct: 100}
	p.Versions = append(p.Versions, v)

	return p
}

func TestValidate_CleanProgramme_NoErrors(t *testing.T) {
	flags := Validate(cleanProgramme())

	assert.Empty(t, Errors(flags))
	for _, f := range flags {
		assert.NotContains(t, f.Message, "not delivered", "no mapping-gap flag expected")
	}
}

func TestValidate_CreditMismatch(t *testing.T) {
	p := cleanProgramme()
	p.Modules[0].Credits = 50

	flags := Validate(p)
	errs := Errors(flags)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "60")
	assert.Contains(t, errs[0].Message, "50")
	assert.Equal(t, domain.StepModules, errs[0].Step)
}

func TestValidate_ZeroTotalCredits_NeverMismatches(t *testing.T) {
	p := cleanProgramme()
	p.TotalCredits = 0
	p.Modules[0].Credits = 37 // arbitrary sum, must not be compared

	for _, f := range Validate(p) {
		assert.NotContains(t, f.Message, "programme total")
	}
}

func TestValidate_DeliveryPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern domain.DeliveryPattern
		wantErr bool
		total   int
	}{
		{"exact hundred", domain.DeliveryPattern{SyncPct: 20, AsyncPct: 30, CampusPct: 50}, false, 100},
		{"under", domain.DeliveryPattern{SyncPct: 20, AsyncPct: 30, CampusPct: 40}, true, 90},
		{"over", domain.DeliveryPattern{SyncPct: 50, AsyncPct: 30, CampusPct: 40}, true, 120},
		{"all zero", domain.DeliveryPattern{}, true, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := cleanProgramme()
			p.Versions[0].Pattern = tc.pattern

			var patternErrs []Flag
			for _, f := range Errors(Validate(p)) {
				if strings.Contains(f.Message, "delivery pattern") {
					patternErrs = append(patternErrs, f)
				}
			}
			if !tc.wantErr {
				assert.Empty(t, patternErrs)
				return
			}
			require.Len(t, patternErrs, 1, "exactly one pattern error per version")
			assert.Contains(t, patternErrs[0].Message, fmt.Sprintf("%d%%", tc.total), "message names the actual total")
		})
	}
}

func TestValidate_UnmappedPLOCount(t *testing.T) {
	p := cleanProgramme()
	p.PLOs = append(p.PLOs,
		domain.NewPLO("plo-2", "Communicate effectively"),
		domain.NewPLO("plo-3", "Work in teams"),
	)
	// plo-1 stays mapped; plo-2 and plo-3 are not.

	var mapErrs []Flag
	for _, f := range Errors(Validate(p)) {
		if strings.Contains(f.Message, "not delivered") {
			mapErrs = append(mapErrs, f)
		}
	}
	require.Len(t, mapErrs, 1, "one aggregated flag, not one per PLO")
	assert.Contains(t, mapErrs[0].Message, "2")
}

func TestValidate_NFQRange(t *testing.T) {
	for _, level := range []int{5, 10, 0, -1} {
		p := cleanProgramme()
		p.NFQLevel = level
		errs := Errors(Validate(p))
		require.NotEmpty(t, errs, "level %d", level)
		assert.Contains(t, errs[0].Message, "NFQ level")
	}
	for _, level := range []int{6, 7, 8, 9} {
		p := cleanProgramme()
		p.NFQLevel = level
		for _, f := range Validate(p) {
			assert.NotContains(t, f.Message, "NFQ level", "level %d", level)
		}
	}
}

func TestValidate_StageTargetIsWarning(t *testing.T) {
	p := cleanProgramme()
	st := domain.NewStage("stage-1", "Year 1", 1)
	st.CreditsTarget = 30
	st.AssignModule("mod-1", "S1") // 60 credits against a 30 target
	p.Versions[0].Stages = append(p.Versions[0].Stages, st)

	flags := Validate(p)
	assert.Empty(t, Errors(flags))

	found := false
	for _, f := range Warnings(flags) {
		if strings.Contains(f.Message, "target of 30") {
			found = true
			assert.Equal(t, domain.StepStages, f.Step)
		}
	}
	assert.True(t, found, "stage mismatch should surface as a warning")
}

func TestValidate_WeightingSumSoft(t *testing.T) {
	p := cleanProgramme()
	p.Modules[0].Assessments[0].Weighting = 70

	flags := Validate(p)
	assert.Empty(t, Errors(flags))

	found := false
	for _, f := range Warnings(flags) {
		if strings.Contains(f.Message, "70%") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_RuleOrderIsStable(t *testing.T) {
	p := cleanProgramme()
	p.Title = ""
	p.PLOs[0].ID = "plo-x" // breaks the mapping, adds an outcome error

	flags := Validate(p)
	var errSteps []domain.Step
	for _, f := range Errors(flags) {
		errSteps = append(errSteps, f.Step)
	}
	require.Len(t, errSteps, 2)
	assert.Equal(t, domain.StepIdentity, errSteps[0], "identity rules run before outcome rules")
	assert.Equal(t, domain.StepOutcomes, errSteps[1])

	// Deterministic: same input, same output.
	assert.Equal(t, flags, Validate(p))
}

func TestValidate_EmptyDocument_TotalNeverPanics(t *testing.T) {
	p := domain.NewProgramme("prog-1")
	p.PLOModuleMap = nil // simulate a sparse imported document

	assert.NotPanics(t, func() { Validate(p) })
}

func TestGroupByStep(t *testing.T) {
	p := cleanProgramme()
	p.Title = ""
	p.Modules[0].Credits = 10

	order, grouped := GroupByStep(Validate(p))
	require.NotEmpty(t, order)
	assert.Equal(t, domain.StepIdentity, order[0])
	for _, s := range order {
		assert.NotEmpty(t, grouped[s])
	}
}
