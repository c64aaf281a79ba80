package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/service"
	"github.com/alexanderramin/provost/internal/standards"
	"github.com/alexanderramin/provost/internal/store"
	"github.com/alexanderramin/provost/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by a temp-dir store for CLI
// integration tests. The ISBN lookup stays nil.
func testApp(t *testing.T) *App {
	t.Helper()
	s := testutil.NewTestStore(t)
	saver := store.NewSaver(s, 10*time.Millisecond)

	catalog, err := standards.Load("")
	require.NoError(t, err)

	return &App{
		Documents:     service.NewDocumentService(s, saver),
		Programme:     service.NewProgrammeService(saver),
		Standards:     catalog,
		IsInteractive: func() bool { return false },
	}
}

// seedDocument stores a small but structurally complete programme.
func seedDocument(t *testing.T, app *App) *domain.Programme {
	t.Helper()
	ctx := context.Background()

	p, err := app.Documents.New(ctx, "BSc Computing")
	require.NoError(t, err)

	m, _ := app.Programme.AddModule(p, "COMP101", "Programming", 60, false)
	lo, _, err := app.Programme.AddMIMLO(p, m.ID, "Write idiomatic programs")
	require.NoError(t, err)
	_, _, err = app.Programme.AddAssessment(p, m.ID, "Project", "group project", 100, []string{lo.ID})
	require.NoError(t, err)

	plo, _ := app.Programme.AddPLO(p, "Apply core programming techniques")
	_, err = app.Programme.MapPLO(p, plo.ID, m.ID)
	require.NoError(t, err)

	require.NoError(t, app.Documents.Flush(ctx))
	return p
}

// executeCmd runs a cobra command and captures stdout alongside the
// command's own output streams.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw
	defer func() { os.Stdout = origStdout }()

	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	execErr := root.Execute()

	pw.Close()
	captured, _ := io.ReadAll(pr)
	os.Stdout = origStdout

	return buf.String() + string(captured), execErr
}

func TestDocCmd_NewAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "doc", "new", "--title", "MSc Data Science")
	require.NoError(t, err)
	assert.Contains(t, out, "Created document MSc Data Science")

	out, err = executeCmd(t, app, "doc", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "MSc Data Science")
}

func TestDocCmd_ShowSummary(t *testing.T) {
	app := testApp(t)
	p := seedDocument(t, app)

	out, err := executeCmd(t, app, "doc", "show", p.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "BSC COMPUTING")
	assert.Contains(t, out, "1 module(s)")
}

func TestModuleCmd_AddAndList(t *testing.T) {
	app := testApp(t)
	p := seedDocument(t, app)

	out, err := executeCmd(t, app, "module", "add",
		"--doc", p.ID, "--code", "COMP102", "--title", "Databases", "--credits", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Added module COMP102")

	out, err = executeCmd(t, app, "module", "list", "--doc", p.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Databases")
	assert.Contains(t, out, "Programming")
}

func TestModuleCmd_UnknownModule(t *testing.T) {
	app := testApp(t)
	p := seedDocument(t, app)

	_, err := executeCmd(t, app, "module", "rm", "GHOST999", "--doc", p.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module not found")
}

func TestCheckCmd_ReportsErrors(t *testing.T) {
	app := testApp(t)
	p := seedDocument(t, app)

	// Break the credit reconciliation.
	app.Programme.SetIdentity(p, p.Title, p.School, p.AwardType, p.NFQLevel, 90)
	require.NoError(t, app.Documents.Flush(context.Background()))

	out, err := executeCmd(t, app, "check", p.ID)
	require.Error(t, err)
	assert.Contains(t, out, "module credits sum to 60 but the programme total is 90")
}

func TestCheckCmd_CleanDocument(t *testing.T) {
	app := testApp(t)
	p := seedDocument(t, app)

	out, err := executeCmd(t, app, "check", p.ID)
	require.NoError(t, err)
	// Warnings are allowed; errors are not.
	assert.NotContains(t, strings.ToLower(out), "error ")
}

func TestTraceCmd_ShowsAlignment(t *testing.T) {
	app := testApp(t)
	p := seedDocument(t, app)

	out, err := executeCmd(t, app, "trace", p.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "COMP101")
	assert.Contains(t, out, "Project")
}

func TestStandardsCmd_List(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "standards", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "computing-2014")
}

func TestStandardsCmd_ChecklistRejectsUnknownLevel(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "standards", "checklist", "computing-2014", "--level", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no NFQ level 3")
}

func TestPLOCmd_MapAndList(t *testing.T) {
	app := testApp(t)
	p := seedDocument(t, app)

	out, err := executeCmd(t, app, "plo", "list", "--doc", p.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "1 module(s)")

	out, err = executeCmd(t, app, "plo", "add", "--doc", p.ID, "--text", "Communicate findings")
	require.NoError(t, err)
	assert.Contains(t, out, "Added PLO2")

	out, err = executeCmd(t, app, "plo", "list", "--doc", p.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "unmapped")
}

func TestReportCmd_Unassessed(t *testing.T) {
	app := testApp(t)
	p := seedDocument(t, app)

	out, err := executeCmd(t, app, "report", "unassessed", p.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Every learning outcome is assessed")
}

func TestExportCmd_JSONToStdout(t *testing.T) {
	app := testApp(t)
	p := seedDocument(t, app)

	out, err := executeCmd(t, app, "export", "json", p.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "\"COMP101\"")
}

func TestReviewCmd_PlainFallback(t *testing.T) {
	app := testApp(t)
	p := seedDocument(t, app)

	out, err := executeCmd(t, app, "review", p.ID, "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "COMP101")
}

// Commands stay usable when the standards catalog failed to load.
func TestCommands_NilStandardsCatalog(t *testing.T) {
	app := testApp(t)
	app.Standards = nil
	p := seedDocument(t, app)

	out, err := executeCmd(t, app, "doc", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "BSc Computing")

	out, err = executeCmd(t, app, "trace", p.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "COMP101")

	out, err = executeCmd(t, app, "standards", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No standards catalog loaded")

	_, err = executeCmd(t, app, "check", p.ID)
	require.NoError(t, err)
}

// External documents may carry IDs shorter than the generated-UUID
// abbreviation width; the listing commands must show them as-is.
func TestImportCmd_AdoptedShortIDsDisplay(t *testing.T) {
	app := testApp(t)

	p := &domain.Programme{
		ID:            "doc-1",
		SchemaVersion: domain.CurrentSchemaVersion,
		Title:         "Imported Cert",
		AwardType:     domain.AwardMinor,
		NFQLevel:      6,
		Modules: []domain.Module{{
			ID:      "m1",
			Code:    "X1",
			Title:   "Intro",
			Credits: 10,
			MIMLOs:  []domain.MIMLO{{ID: "lo1", Text: "Recall the basics"}},
		}},
		PLOs:         []domain.PLO{domain.NewPLO("plo1", "Outline the field")},
		PLOModuleMap: map[string][]string{"plo1": {"m1"}},
		Versions: []domain.Version{{
			ID:       "v1",
			Label:    "FT",
			Modality: domain.ModalityOnSite,
		}},
	}
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "cert.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	out, err := executeCmd(t, app, "import", path, "--adopt")
	require.NoError(t, err)
	assert.Contains(t, out, "Adopted document Imported Cert [doc-1]")

	out, err = executeCmd(t, app, "module", "list", "--doc", "doc-1")
	require.NoError(t, err)
	assert.Contains(t, out, "m1")
	assert.Contains(t, out, "Intro")

	out, err = executeCmd(t, app, "version", "list", "--doc", "doc-1")
	require.NoError(t, err)
	assert.Contains(t, out, "v1")
}
