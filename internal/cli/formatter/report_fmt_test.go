package formatter

import (
	"testing"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/report"
	"github.com/stretchr/testify/assert"
)

func TestFormatStageTotals(t *testing.T) {
	stages := []report.StageReport{
		{
			StageName: "Year 1",
			Totals: []report.TypeTotal{
				{Category: report.CategoryExam, Count: 2, Weighting: 80},
			},
		},
		{StageName: "Year 2"},
	}

	out := FormatStageTotals(stages)
	assert.Contains(t, out, "YEAR 1")
	assert.Contains(t, out, "80%")
	assert.Contains(t, out, "no assessments")
}

func TestFormatUnassessed(t *testing.T) {
	assert.Contains(t, FormatUnassessed(nil), "Every learning outcome is assessed")

	cov := []report.CoverageReport{
		{
			ModuleLabel: "COMP101 — Programming",
			Unassessed:  []domain.MIMLO{{ID: "lo1", Text: "Explain pointers"}},
		},
	}
	assert.Contains(t, FormatUnassessed(cov), "Explain pointers")
}
