package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFlow_DeduplicatesNodesPerTier(t *testing.T) {
	rows := []Row{
		{Status: StatusCovered, Criterion: "Knowledge", Thread: "Breadth",
			PLOID: "plo-1", PLOText: "Build software",
			ModuleID: "mod-1", ModuleLabel: "CS101",
			MIMLOID: "mlo-1", MIMLOText: "Use loops",
			AssessmentID: "as-1", AssessmentTitle: "Exam"},
		{Status: StatusCovered, Criterion: "Knowledge", Thread: "Kind",
			PLOID: "plo-1", PLOText: "Build software",
			ModuleID: "mod-1", ModuleLabel: "CS101",
			MIMLOID: "mlo-1", MIMLOText: "Use loops",
			AssessmentID: "as-1", AssessmentTitle: "Exam"},
	}

	flow := BuildFlow(rows)

	// Two standard nodes, but PLO/module/MIMLO/assessment dedupe to one each.
	tierCount := map[Tier]int{}
	for _, n := range flow.Nodes {
		tierCount[n.Tier]++
	}
	assert.Equal(t, 2, tierCount[TierStandard])
	assert.Equal(t, 1, tierCount[TierPLO])
	assert.Equal(t, 1, tierCount[TierModule])
	assert.Equal(t, 1, tierCount[TierMIMLO])
	assert.Equal(t, 1, tierCount[TierAssessment])
}

func TestBuildFlow_AccumulatesEdgeWeight(t *testing.T) {
	rows := []Row{
		{Status: StatusCovered, Criterion: "Knowledge", Thread: "Breadth",
			PLOID: "plo-1", PLOText: "Build software",
			ModuleID: "mod-1", ModuleLabel: "CS101",
			MIMLOID: "mlo-1", MIMLOText: "Use loops",
			AssessmentID: "as-1", AssessmentTitle: "Exam"},
		{Status: StatusCovered, Criterion: "Knowledge", Thread: "Breadth",
			PLOID: "plo-1", PLOText: "Build software",
			ModuleID: "mod-1", ModuleLabel: "CS101",
			MIMLOID: "mlo-2", MIMLOText: "Use maps",
			AssessmentID: "as-1", AssessmentTitle: "Exam"},
	}

	flow := BuildFlow(rows)

	// standard->plo and plo->module repeat across the two rows; no
	// parallel edges, weight accumulates instead.
	var ploModule *FlowEdge
	for i := range flow.Edges {
		e := &flow.Edges[i]
		if e.Source.Tier == TierPLO && e.Target.Tier == TierModule {
			require.Nil(t, ploModule, "only one plo->module edge expected")
			ploModule = e
		}
	}
	require.NotNil(t, ploModule)
	assert.Equal(t, 2, ploModule.Weight)

	// mimlo->assessment edges stay distinct per MIMLO.
	mimloEdges := 0
	for _, e := range flow.Edges {
		if e.Source.Tier == TierMIMLO {
			mimloEdges++
			assert.Equal(t, 1, e.Weight)
		}
	}
	assert.Equal(t, 2, mimloEdges)
}

func TestBuildFlow_GapRowsStopEarly(t *testing.T) {
	rows := []Row{
		{Status: StatusStandardGap, Criterion: "Competence", Thread: "Role"},
		{Status: StatusOutcomeGap, Criterion: "Knowledge", Thread: "Breadth",
			PLOID: "plo-1", PLOText: "Orphan outcome"},
	}

	flow := BuildFlow(rows)

	require.Len(t, flow.Nodes, 3)
	assert.Len(t, flow.Edges, 1)
	assert.Equal(t, TierStandard, flow.Edges[0].Source.Tier)
	assert.Equal(t, TierPLO, flow.Edges[0].Target.Tier)
}

func TestBuildFlow_Empty(t *testing.T) {
	flow := BuildFlow(nil)
	assert.Empty(t, flow.Nodes)
	assert.Empty(t, flow.Edges)
}
