package importer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() *domain.Programme {
	p := domain.NewProgramme("prog-1")
	p.Title = "BSc Computing"
	p.NFQLevel = 7

	m := domain.NewModule("mod-1", "CS101", "Programming 1", 60)
	m.MIMLOs = append(m.MIMLOs, domain.MIMLO{ID: "mlo-1", Text: "Use loops"})
	a := domain.NewAssessment("as-1", "Exam", "written exam", 100)
	a.Covers = []string{"mlo-1"}
	m.Assessments = append(m.Assessments, a)
	p.Modules = append(p.Modules, m)

	p.PLOs = append(p.PLOs, domain.NewPLO("plo-1", "Build software"))
	p.MapPLO("plo-1", "mod-1")

	v := domain.NewVersion("ver-1", "Full-time")
	st := domain.NewStage("stage-1", "Year 1", 1)
	st.AssignModule("mod-1", "S1")
	v.Stages = append(v.Stages, st)
	p.Versions = append(p.Versions, v)
	return p
}

func TestValidateDocument_Clean(t *testing.T) {
	assert.Empty(t, ValidateDocument(validDocument()))
}

func TestValidateDocument_AccumulatesAllErrors(t *testing.T) {
	p := validDocument()
	p.ID = ""
	p.Modules[0].Assessments[0].Weighting = 150
	p.Modules[0].Assessments[0].Covers = []string{"ghost-mlo"}
	p.PLOModuleMap["plo-1"] = []string{"ghost-mod"}
	p.Versions[0].Modality = "hologram"
	p.Versions[0].Stages[0].Slots[0].ModuleID = "ghost-mod"

	errs := ValidateDocument(p)
	require.Len(t, errs, 6, "every violation is reported: %v", errs)

	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Error()
	}
	joined := ""
	for _, m := range messages {
		joined += m + "\n"
	}
	assert.Contains(t, joined, "no id")
	assert.Contains(t, joined, "150%")
	assert.Contains(t, joined, "ghost-mlo")
	assert.Contains(t, joined, "ghost-mod")
	assert.Contains(t, joined, "hologram")
}

func TestValidateDocument_DuplicateIDs(t *testing.T) {
	p := validDocument()
	p.Modules = append(p.Modules, domain.NewModule("mod-1", "CS999", "Clone", 0))
	p.PLOs = append(p.PLOs, domain.NewPLO("plo-1", "Clone outcome"))

	errs := ValidateDocument(p)
	joined := ""
	for _, e := range errs {
		joined += e.Error() + "\n"
	}
	assert.Contains(t, joined, `duplicate module id "mod-1"`)
	assert.Contains(t, joined, `duplicate learning outcome id "plo-1"`)
}

func TestReadFile_RoundTrip(t *testing.T) {
	p := validDocument()
	path := filepath.Join(t.TempDir(), "programme.json")

	data := mustMarshal(t, p)
	require.NoError(t, os.WriteFile(path, data, 0644))

	got, structural, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, structural)
	assert.Equal(t, *p, *got)
}

func TestReadFile_LegacyShapeIsMigrated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.json")
	legacy := `{
		"id": "prog-old",
		"title": "Old Cert",
		"standard": "computing-2014",
		"modality": "online"
	}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	got, structural, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, structural)
	assert.Equal(t, []string{"computing-2014"}, got.StandardRefs)
	require.Len(t, got.Versions, 1)
	assert.Equal(t, domain.ModalityOnline, got.Versions[0].Modality)
}

func TestReadFile_MissingFile(t *testing.T) {
	_, _, err := ReadFile("/nonexistent/doc.json")
	assert.Error(t, err)
}

func TestReadFile_CorruptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, _, err := ReadFile(path)
	assert.Error(t, err)
}

func mustMarshal(t *testing.T, p *domain.Programme) []byte {
	t.Helper()
	data, err := json.Marshal(p)
	require.NoError(t, err)
	return data
}
