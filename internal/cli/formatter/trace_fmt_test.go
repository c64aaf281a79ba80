package formatter

import (
	"testing"

	"github.com/alexanderramin/provost/internal/trace"
	"github.com/stretchr/testify/assert"
)

func TestFormatTraceTable_Empty(t *testing.T) {
	out := FormatTraceTable(nil)
	assert.Contains(t, out, "No outcomes to trace yet")
}

func TestFormatTraceTable_RendersRows(t *testing.T) {
	rows := []trace.Row{
		{
			Status:          trace.StatusCovered,
			Criterion:       "Knowledge",
			Thread:          "Breadth",
			PLOText:         "Analyse requirements",
			ModuleLabel:     "COMP101 — Programming",
			MIMLOText:       "Write idiomatic programs",
			AssessmentTitle: "Project",
		},
		{
			Status:    trace.StatusStandardGap,
			Criterion: "Competence",
			Thread:    "Insight",
		},
	}

	out := FormatTraceTable(rows)
	assert.Contains(t, out, "COVERED")
	assert.Contains(t, out, "STANDARD GAP")
	assert.Contains(t, out, "Knowledge / Breadth")
	assert.Contains(t, out, "COMP101")
}

func TestFormatFlowSummary_CountsPerTier(t *testing.T) {
	f := trace.Flow{
		Nodes: []trace.FlowNode{
			{Tier: trace.TierPLO, Label: "PLO1"},
			{Tier: trace.TierModule, Label: "COMP101"},
			{Tier: trace.TierModule, Label: "COMP102"},
		},
		Edges: []trace.FlowEdge{{Weight: 2}},
	}

	out := FormatFlowSummary(f)
	assert.Contains(t, out, "plo")
	assert.Contains(t, out, "1 edge(s)")
}
