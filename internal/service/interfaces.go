package service

import (
	"context"
	"io"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/store"
	"github.com/alexanderramin/provost/internal/validate"
)

// DocumentService handles whole-document lifecycle: creation, opening,
// import/export and the autosave history.
type DocumentService interface {
	New(ctx context.Context, title string) (*domain.Programme, error)
	Open(ctx context.Context, id string) (*domain.Programme, error)
	List(ctx context.Context) ([]store.DocumentInfo, error)
	Delete(ctx context.Context, id string) error

	// Import reads an external JSON file, replacing nothing until the
	// caller decides; structural problems are returned alongside the
	// decoded document.
	Import(ctx context.Context, path string) (*domain.Programme, []error, error)

	// Adopt persists an imported document, replacing any stored
	// document with the same ID wholesale.
	Adopt(ctx context.Context, p *domain.Programme) error

	ExportJSON(p *domain.Programme, w io.Writer) error
	ExportDocx(p *domain.Programme, templatePath, outPath string) error

	History(ctx context.Context, id string, limit int) ([]store.Autosave, error)

	// Flush forces any debounced save to disk, e.g. on exit.
	Flush(ctx context.Context) error
}

// ProgrammeService applies editing operations to the in-memory
// document. Every mutation schedules a debounced save and returns the
// full re-validation result.
type ProgrammeService interface {
	SetIdentity(p *domain.Programme, title, school string, award domain.AwardType, nfqLevel, totalCredits int) []validate.Flag
	SetStandards(p *domain.Programme, refs []string) []validate.Flag

	AddModule(p *domain.Programme, code, title string, credits int, elective bool) (*domain.Module, []validate.Flag)
	UpdateModule(p *domain.Programme, id string, mutate func(*domain.Module)) ([]validate.Flag, error)
	RemoveModule(p *domain.Programme, id string) ([]validate.Flag, error)

	AddPLO(p *domain.Programme, text string) (*domain.PLO, []validate.Flag)
	RemovePLO(p *domain.Programme, id string) ([]validate.Flag, error)
	MapPLO(p *domain.Programme, ploID, moduleID string) ([]validate.Flag, error)
	UnmapPLO(p *domain.Programme, ploID, moduleID string) []validate.Flag
	AddStandardMapping(p *domain.Programme, ploID string, sm domain.StandardMapping) ([]validate.Flag, error)

	AddVersion(p *domain.Programme, label string) (*domain.Version, []validate.Flag)
	UpdateVersion(p *domain.Programme, id string, mutate func(*domain.Version)) ([]validate.Flag, error)
	RemoveVersion(p *domain.Programme, id string) ([]validate.Flag, error)

	AddStage(p *domain.Programme, versionID, name string, creditsTarget int) (*domain.Stage, []validate.Flag, error)
	RemoveStage(p *domain.Programme, versionID, stageID string) ([]validate.Flag, error)
	AssignModule(p *domain.Programme, versionID, stageID, moduleID, semester string) ([]validate.Flag, error)
	UnassignModule(p *domain.Programme, versionID, stageID, moduleID string) ([]validate.Flag, error)

	AddAssessment(p *domain.Programme, moduleID, title, typ string, weighting int, covers []string) (*domain.Assessment, []validate.Flag, error)
	RemoveAssessment(p *domain.Programme, moduleID, assessmentID string) ([]validate.Flag, error)

	AddMIMLO(p *domain.Programme, moduleID, text string) (*domain.MIMLO, []validate.Flag, error)
	RemoveMIMLO(p *domain.Programme, moduleID, mimloID string) ([]validate.Flag, error)

	AddReading(p *domain.Programme, moduleID string, item domain.ReadingItem) (*domain.ReadingItem, []validate.Flag, error)
	UpdateReading(p *domain.Programme, moduleID, itemID string, mutate func(*domain.ReadingItem)) ([]validate.Flag, error)

	SetEffort(p *domain.Programme, moduleID, versionID string, modality domain.Modality, hours domain.EffortHours) ([]validate.Flag, error)
}

// LookupService fills reading-list entries from an ISBN lookup.
type LookupService interface {
	FillReading(ctx context.Context, p *domain.Programme, moduleID, itemID string) error
}
