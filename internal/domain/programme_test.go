package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveModule_StripsAllReferences(t *testing.T) {
	p := NewProgramme("prog-1")
	p.Modules = append(p.Modules,
		NewModule("mod-1", "CS101", "Programming 1", 10),
		NewModule("mod-2", "CS102", "Programming 2", 10),
	)
	p.PLOs = append(p.PLOs, NewPLO("plo-1", "Write programs"))
	p.MapPLO("plo-1", "mod-1")
	p.MapPLO("plo-1", "mod-2")

	v := NewVersion("ver-1", "Full-time")
	st := NewStage("stage-1", "Year 1", 1)
	st.AssignModule("mod-1", "S1")
	st.AssignModule("mod-2", "S1")
	v.Stages = append(v.Stages, st)
	p.Versions = append(p.Versions, v)

	require.True(t, p.RemoveModule("mod-1"))

	assert.Nil(t, p.ModuleByID("mod-1"))
	assert.Equal(t, []string{"mod-2"}, p.PLOModuleMap["plo-1"])

	slots := p.Versions[0].Stages[0].Slots
	require.Len(t, slots, 1)
	assert.Equal(t, "mod-2", slots[0].ModuleID)
}

func TestRemoveModule_UnknownID(t *testing.T) {
	p := NewProgramme("prog-1")
	assert.False(t, p.RemoveModule("nope"))
}

func TestRemovePLO_DropsMappingEntry(t *testing.T) {
	p := NewProgramme("prog-1")
	p.PLOs = append(p.PLOs, NewPLO("plo-1", "Analyse requirements"))
	p.MapPLO("plo-1", "mod-1")

	require.True(t, p.RemovePLO("plo-1"))
	assert.Empty(t, p.PLOs)
	_, ok := p.PLOModuleMap["plo-1"]
	assert.False(t, ok)
}

func TestRemoveMIMLO_StripsAssessmentCoverage(t *testing.T) {
	m := NewModule("mod-1", "CS101", "Programming 1", 10)
	m.MIMLOs = append(m.MIMLOs, MIMLO{ID: "mlo-1", Text: "Use loops"}, MIMLO{ID: "mlo-2", Text: "Use arrays"})
	a := NewAssessment("as-1", "Exam", "written exam", 60)
	a.Covers = []string{"mlo-1", "mlo-2"}
	m.Assessments = append(m.Assessments, a)

	require.True(t, m.RemoveMIMLO("mlo-1"))
	assert.Equal(t, []string{"mlo-2"}, m.Assessments[0].Covers)
}

func TestMapPLO_Idempotent(t *testing.T) {
	p := NewProgramme("prog-1")
	p.MapPLO("plo-1", "mod-1")
	p.MapPLO("plo-1", "mod-1")
	assert.Equal(t, []string{"mod-1"}, p.PLOModuleMap["plo-1"])

	p.UnmapPLO("plo-1", "mod-1")
	assert.Empty(t, p.PLOModuleMap["plo-1"])
}

func TestStage_AssignedCredits(t *testing.T) {
	p := NewProgramme("prog-1")
	p.Modules = append(p.Modules,
		NewModule("mod-1", "CS101", "Programming 1", 10),
		NewModule("mod-2", "CS102", "Programming 2", 5),
	)
	st := NewStage("stage-1", "Year 1", 1)
	st.AssignModule("mod-1", "S1")
	st.AssignModule("mod-2", "S2")
	st.AssignModule("ghost", "S2") // unknown IDs count as zero

	assert.Equal(t, 15, st.AssignedCredits(p))
}

func TestStage_AssignModule_RejectsDuplicate(t *testing.T) {
	st := NewStage("stage-1", "Year 1", 1)
	assert.True(t, st.AssignModule("mod-1", "S1"))
	assert.False(t, st.AssignModule("mod-1", "S2"))
	assert.Len(t, st.Slots, 1)
}

func TestProgramme_JSONRoundTrip(t *testing.T) {
	p := NewProgramme("prog-1")
	p.Title = "BSc Computing"
	p.NFQLevel = 7
	p.TotalCredits = 180
	p.StandardRefs = []string{"computing-2014"}

	m := NewModule("mod-1", "CS101", "Programming 1", 10)
	m.MIMLOs = append(m.MIMLOs, MIMLO{ID: "mlo-1", Text: "Use loops"})
	m.Effort[EffortKey("ver-1", ModalityOnSite)] = EffortHours{Lecture: 24, Independent: 76, ContactRatio: "1:3"}
	m.Reading = append(m.Reading, ReadingItem{ID: "rd-1", Author: "Donovan & Kernighan", Title: "The Go Programming Language", Year: "2015", Kind: ReadingCore})
	p.Modules = append(p.Modules, m)

	p.PLOs = append(p.PLOs, PLO{ID: "plo-1", Text: "Build software", Mappings: []StandardMapping{{Criterion: "Knowledge", Thread: "Breadth", StandardRef: "computing-2014"}}})
	p.MapPLO("plo-1", "mod-1")

	v := NewVersion("ver-1", "Full-time")
	v.Stages = append(v.Stages, NewStage("stage-1", "Year 1", 1))
	p.Versions = append(p.Versions, v)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got Programme
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *p, got)
}

func TestLenientInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"42", 42},
		{"-5", -5},
		{"abc", 0},
		{"12.5", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, LenientInt(tc.in), "input %q", tc.in)
	}
}
