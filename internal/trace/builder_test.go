package trace

import (
	"testing"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/standards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *standards.Catalog {
	t.Helper()
	cat, err := standards.Parse([]byte(`{
		"standards": [{
			"ref": "computing-2014",
			"name": "Computing",
			"levels": [7, 8],
			"criteria": [
				{"name": "Knowledge", "threads": [
					{"name": "Breadth", "descriptors": {"8": "b"}},
					{"name": "Kind", "descriptors": {"8": "k"}}
				]},
				{"name": "Competence", "threads": [
					{"name": "Role", "descriptors": {"8": "r"}}
				]}
			]
		}]
	}`))
	require.NoError(t, err)
	return cat
}

// tracedProgramme maps one PLO to Knowledge/Breadth and delivers it via
// one module whose single MIMLO is assessed once.
func tracedProgramme() *domain.Programme {
	p := domain.NewProgramme("prog-1")
	p.Title = "BSc Computing"
	p.NFQLevel = 8
	p.StandardRefs = []string{"computing-2014"}

	m := domain.NewModule("mod-1", "CS101", "Programming 1", 10)
	m.MIMLOs = append(m.MIMLOs, domain.MIMLO{ID: "mlo-1", Text: "Use loops"})
	a := domain.NewAssessment("as-1", "Final Exam", "written exam", 100)
	a.Covers = []string{"mlo-1"}
	m.Assessments = append(m.Assessments, a)
	p.Modules = append(p.Modules, m)

	plo := domain.NewPLO("plo-1", "Build software")
	plo.Mappings = append(plo.Mappings, domain.StandardMapping{
		Criterion: "Knowledge", Thread: "Breadth", StandardRef: "computing-2014",
	})
	p.PLOs = append(p.PLOs, plo)
	p.MapPLO("plo-1", "mod-1")
	return p
}

func statusCount(rows []Row, s Status) int {
	n := 0
	for _, r := range rows {
		if r.Status == s {
			n++
		}
	}
	return n
}

func TestBuild_CoveredPath(t *testing.T) {
	rows := Build(tracedProgramme(), testCatalog(t))

	require.Equal(t, 1, statusCount(rows, StatusCovered))
	var covered Row
	for _, r := range rows {
		if r.Status == StatusCovered {
			covered = r
		}
	}
	assert.Equal(t, "Knowledge / Breadth", covered.StandardLabel())
	assert.Equal(t, "Build software", covered.PLOText)
	assert.Equal(t, "CS101 — Programming 1", covered.ModuleLabel)
	assert.Equal(t, "Use loops", covered.MIMLOText)
	assert.Equal(t, "Final Exam", covered.AssessmentTitle)
}

func TestBuild_StandardGapCountMatchesChecklist(t *testing.T) {
	p := tracedProgramme()
	cat := testCatalog(t)

	rows := Build(p, cat)

	// Checklist has 3 pairs; only Knowledge/Breadth is claimed.
	assert.Equal(t, 2, statusCount(rows, StatusStandardGap))

	// Gap rows are prepended, ahead of everything authored.
	require.True(t, len(rows) >= 2)
	assert.Equal(t, StatusStandardGap, rows[0].Status)
	assert.Equal(t, StatusStandardGap, rows[1].Status)
}

func TestBuild_AllStatusesAreKnown(t *testing.T) {
	p := tracedProgramme()
	p.PLOs = append(p.PLOs, domain.NewPLO("plo-2", "Unmapped outcome"))

	known := map[Status]bool{
		StatusCovered: true, StatusAssessmentGap: true,
		StatusOutcomeGap: true, StatusStandardGap: true,
	}
	for _, r := range Build(p, testCatalog(t)) {
		assert.True(t, known[r.Status], "unknown status %q", r.Status)
	}
}

func TestBuild_UnmappedPLO_SingleGapRow(t *testing.T) {
	p := tracedProgramme()
	plo := domain.NewPLO("plo-2", "Dangling outcome")
	plo.Mappings = append(plo.Mappings, domain.StandardMapping{
		Criterion: "Competence", Thread: "Role", StandardRef: "computing-2014",
	})
	p.PLOs = append(p.PLOs, plo)
	// No module mapping for plo-2.

	rows := Build(p, testCatalog(t))

	var gapRows []Row
	for _, r := range rows {
		if r.PLOID == "plo-2" {
			gapRows = append(gapRows, r)
		}
	}
	require.Len(t, gapRows, 1)
	assert.Equal(t, StatusOutcomeGap, gapRows[0].Status)
	assert.Empty(t, gapRows[0].ModuleID)

	// Claiming Competence/Role still marks the pair covered for the sweep.
	assert.Equal(t, 1, statusCount(rows, StatusStandardGap))
}

func TestBuild_PLOWithoutStandardMapping_PlaceholderRow(t *testing.T) {
	p := tracedProgramme()
	p.PLOs[0].Mappings = nil

	rows := Build(p, testCatalog(t))

	var authored []Row
	for _, r := range rows {
		if r.PLOID == "plo-1" {
			authored = append(authored, r)
		}
	}
	require.Len(t, authored, 1)
	assert.Equal(t, "(not mapped)", authored[0].StandardLabel())
	assert.Equal(t, StatusCovered, authored[0].Status, "the outcome itself is still assessed")

	// Nothing claims the checklist now.
	assert.Equal(t, 3, statusCount(rows, StatusStandardGap))
}

func TestBuild_ModuleWithoutMIMLOs(t *testing.T) {
	p := tracedProgramme()
	p.Modules[0].MIMLOs = nil
	p.Modules[0].Assessments = nil

	rows := Build(p, testCatalog(t))

	var authored []Row
	for _, r := range rows {
		if r.PLOID == "plo-1" {
			authored = append(authored, r)
		}
	}
	require.Len(t, authored, 1)
	assert.Equal(t, StatusOutcomeGap, authored[0].Status)
	assert.Equal(t, "CS101 — Programming 1", authored[0].ModuleLabel)
	assert.Empty(t, authored[0].MIMLOID)
}

func TestBuild_UnassessedMIMLO(t *testing.T) {
	p := tracedProgramme()
	p.Modules[0].MIMLOs = append(p.Modules[0].MIMLOs, domain.MIMLO{ID: "mlo-2", Text: "Use maps"})

	rows := Build(p, testCatalog(t))

	var gap []Row
	for _, r := range rows {
		if r.MIMLOID == "mlo-2" {
			gap = append(gap, r)
		}
	}
	require.Len(t, gap, 1)
	assert.Equal(t, StatusAssessmentGap, gap[0].Status)
	assert.Empty(t, gap[0].AssessmentID)
}

func TestBuild_OneRowPerCoveringAssessment(t *testing.T) {
	p := tracedProgramme()
	a2 := domain.NewAssessment("as-2", "Lab Portfolio", "portfolio", 0)
	a2.Covers = []string{"mlo-1"}
	p.Modules[0].Assessments = append(p.Modules[0].Assessments, a2)

	rows := Build(p, testCatalog(t))
	assert.Equal(t, 2, statusCount(rows, StatusCovered))
}

func TestBuild_NilCatalog_SkipsSweep(t *testing.T) {
	p := tracedProgramme()
	rows := Build(p, nil)

	assert.Equal(t, 0, statusCount(rows, StatusStandardGap))
	assert.Equal(t, 1, statusCount(rows, StatusCovered), "authored rows still produced")
}

func TestBuild_EmptyProgramme(t *testing.T) {
	p := domain.NewProgramme("prog-1")
	p.NFQLevel = 8
	p.StandardRefs = []string{"computing-2014"}

	rows := Build(p, testCatalog(t))
	// Entire checklist is uncovered; no authored rows exist.
	assert.Len(t, rows, 3)
	assert.Equal(t, 3, statusCount(rows, StatusStandardGap))
}

func TestSeverityRank(t *testing.T) {
	assert.Less(t, SeverityRank(StatusStandardGap), SeverityRank(StatusOutcomeGap))
	assert.Less(t, SeverityRank(StatusOutcomeGap), SeverityRank(StatusAssessmentGap))
	assert.Less(t, SeverityRank(StatusAssessmentGap), SeverityRank(StatusCovered))
}
