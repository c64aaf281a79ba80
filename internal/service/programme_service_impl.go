package service

import (
	"fmt"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/store"
	"github.com/alexanderramin/provost/internal/validate"
	"github.com/google/uuid"
)

type programmeService struct {
	saver *store.Saver
}

// NewProgrammeService creates the editing service. Every mutation
// schedules a debounced save of the document and re-runs validation.
func NewProgrammeService(saver *store.Saver) ProgrammeService {
	return &programmeService{saver: saver}
}

// touch re-validates after a mutation and schedules the save.
func (s *programmeService) touch(p *domain.Programme) []validate.Flag {
	s.saver.Touch(p)
	return validate.Validate(p)
}

func (s *programmeService) SetIdentity(p *domain.Programme, title, school string, award domain.AwardType, nfqLevel, totalCredits int) []validate.Flag {
	p.Title = title
	p.School = school
	p.AwardType = award
	p.NFQLevel = nfqLevel
	p.TotalCredits = totalCredits
	return s.touch(p)
}

func (s *programmeService) SetStandards(p *domain.Programme, refs []string) []validate.Flag {
	p.StandardRefs = append([]string{}, refs...)
	return s.touch(p)
}

func (s *programmeService) AddModule(p *domain.Programme, code, title string, credits int, elective bool) (*domain.Module, []validate.Flag) {
	m := domain.NewModule(uuid.New().String(), code, title, credits)
	m.Elective = elective
	p.Modules = append(p.Modules, m)
	flags := s.touch(p)
	return &p.Modules[len(p.Modules)-1], flags
}

func (s *programmeService) UpdateModule(p *domain.Programme, id string, mutate func(*domain.Module)) ([]validate.Flag, error) {
	m := p.ModuleByID(id)
	if m == nil {
		return nil, fmt.Errorf("module not found: %q", id)
	}
	mutate(m)
	return s.touch(p), nil
}

func (s *programmeService) RemoveModule(p *domain.Programme, id string) ([]validate.Flag, error) {
	if !p.RemoveModule(id) {
		return nil, fmt.Errorf("module not found: %q", id)
	}
	return s.touch(p), nil
}

func (s *programmeService) AddPLO(p *domain.Programme, text string) (*domain.PLO, []validate.Flag) {
	p.PLOs = append(p.PLOs, domain.NewPLO(uuid.New().String(), text))
	flags := s.touch(p)
	return &p.PLOs[len(p.PLOs)-1], flags
}

func (s *programmeService) RemovePLO(p *domain.Programme, id string) ([]validate.Flag, error) {
	if !p.RemovePLO(id) {
		return nil, fmt.Errorf("learning outcome not found: %q", id)
	}
	return s.touch(p), nil
}

func (s *programmeService) MapPLO(p *domain.Programme, ploID, moduleID string) ([]validate.Flag, error) {
	if p.PLOByID(ploID) == nil {
		return nil, fmt.Errorf("learning outcome not found: %q", ploID)
	}
	if p.ModuleByID(moduleID) == nil {
		return nil, fmt.Errorf("module not found: %q", moduleID)
	}
	p.MapPLO(ploID, moduleID)
	return s.touch(p), nil
}

func (s *programmeService) UnmapPLO(p *domain.Programme, ploID, moduleID string) []validate.Flag {
	p.UnmapPLO(ploID, moduleID)
	return s.touch(p)
}

func (s *programmeService) AddStandardMapping(p *domain.Programme, ploID string, sm domain.StandardMapping) ([]validate.Flag, error) {
	plo := p.PLOByID(ploID)
	if plo == nil {
		return nil, fmt.Errorf("learning outcome not found: %q", ploID)
	}
	plo.Mappings = append(plo.Mappings, sm)
	return s.touch(p), nil
}

func (s *programmeService) AddVersion(p *domain.Programme, label string) (*domain.Version, []validate.Flag) {
	p.Versions = append(p.Versions, domain.NewVersion(uuid.New().String(), label))
	flags := s.touch(p)
	return &p.Versions[len(p.Versions)-1], flags
}

func (s *programmeService) UpdateVersion(p *domain.Programme, id string, mutate func(*domain.Version)) ([]validate.Flag, error) {
	v := p.VersionByID(id)
	if v == nil {
		return nil, fmt.Errorf("version not found: %q", id)
	}
	mutate(v)
	return s.touch(p), nil
}

func (s *programmeService) RemoveVersion(p *domain.Programme, id string) ([]validate.Flag, error) {
	if !p.RemoveVersion(id) {
		return nil, fmt.Errorf("version not found: %q", id)
	}
	return s.touch(p), nil
}

func (s *programmeService) AddStage(p *domain.Programme, versionID, name string, creditsTarget int) (*domain.Stage, []validate.Flag, error) {
	v := p.VersionByID(versionID)
	if v == nil {
		return nil, nil, fmt.Errorf("version not found: %q", versionID)
	}
	st := domain.NewStage(uuid.New().String(), name, len(v.Stages)+1)
	st.CreditsTarget = creditsTarget
	v.Stages = append(v.Stages, st)
	flags := s.touch(p)
	return &v.Stages[len(v.Stages)-1], flags, nil
}

func (s *programmeService) RemoveStage(p *domain.Programme, versionID, stageID string) ([]validate.Flag, error) {
	v := p.VersionByID(versionID)
	if v == nil {
		return nil, fmt.Errorf("version not found: %q", versionID)
	}
	if !v.RemoveStage(stageID) {
		return nil, fmt.Errorf("stage not found: %q", stageID)
	}
	return s.touch(p), nil
}

func (s *programmeService) AssignModule(p *domain.Programme, versionID, stageID, moduleID, semester string) ([]validate.Flag, error) {
	st, err := s.resolveStage(p, versionID, stageID)
	if err != nil {
		return nil, err
	}
	if p.ModuleByID(moduleID) == nil {
		return nil, fmt.Errorf("module not found: %q", moduleID)
	}
	if !st.AssignModule(moduleID, semester) {
		return nil, fmt.Errorf("module %q already assigned to stage %q", moduleID, st.Name)
	}
	return s.touch(p), nil
}

func (s *programmeService) UnassignModule(p *domain.Programme, versionID, stageID, moduleID string) ([]validate.Flag, error) {
	st, err := s.resolveStage(p, versionID, stageID)
	if err != nil {
		return nil, err
	}
	if !st.UnassignModule(moduleID) {
		return nil, fmt.Errorf("module %q is not assigned to stage %q", moduleID, st.Name)
	}
	return s.touch(p), nil
}

func (s *programmeService) AddAssessment(p *domain.Programme, moduleID, title, typ string, weighting int, covers []string) (*domain.Assessment, []validate.Flag, error) {
	m := p.ModuleByID(moduleID)
	if m == nil {
		return nil, nil, fmt.Errorf("module not found: %q", moduleID)
	}
	for _, c := range covers {
		if m.MIMLOByID(c) == nil {
			return nil, nil, fmt.Errorf("module %q has no outcome %q", m.DisplayLabel(), c)
		}
	}
	a := domain.NewAssessment(uuid.New().String(), title, typ, weighting)
	a.Covers = append(a.Covers, covers...)
	m.Assessments = append(m.Assessments, a)
	flags := s.touch(p)
	return &m.Assessments[len(m.Assessments)-1], flags, nil
}

func (s *programmeService) RemoveAssessment(p *domain.Programme, moduleID, assessmentID string) ([]validate.Flag, error) {
	m := p.ModuleByID(moduleID)
	if m == nil {
		return nil, fmt.Errorf("module not found: %q", moduleID)
	}
	if !m.RemoveAssessment(assessmentID) {
		return nil, fmt.Errorf("assessment not found: %q", assessmentID)
	}
	return s.touch(p), nil
}

func (s *programmeService) AddMIMLO(p *domain.Programme, moduleID, text string) (*domain.MIMLO, []validate.Flag, error) {
	m := p.ModuleByID(moduleID)
	if m == nil {
		return nil, nil, fmt.Errorf("module not found: %q", moduleID)
	}
	m.MIMLOs = append(m.MIMLOs, domain.MIMLO{ID: uuid.New().String(), Text: text})
	flags := s.touch(p)
	return &m.MIMLOs[len(m.MIMLOs)-1], flags, nil
}

func (s *programmeService) RemoveMIMLO(p *domain.Programme, moduleID, mimloID string) ([]validate.Flag, error) {
	m := p.ModuleByID(moduleID)
	if m == nil {
		return nil, fmt.Errorf("module not found: %q", moduleID)
	}
	if !m.RemoveMIMLO(mimloID) {
		return nil, fmt.Errorf("learning outcome not found: %q", mimloID)
	}
	return s.touch(p), nil
}

func (s *programmeService) AddReading(p *domain.Programme, moduleID string, item domain.ReadingItem) (*domain.ReadingItem, []validate.Flag, error) {
	m := p.ModuleByID(moduleID)
	if m == nil {
		return nil, nil, fmt.Errorf("module not found: %q", moduleID)
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Kind == "" {
		item.Kind = domain.ReadingSecondary
	}
	m.Reading = append(m.Reading, item)
	flags := s.touch(p)
	return &m.Reading[len(m.Reading)-1], flags, nil
}

func (s *programmeService) UpdateReading(p *domain.Programme, moduleID, itemID string, mutate func(*domain.ReadingItem)) ([]validate.Flag, error) {
	m := p.ModuleByID(moduleID)
	if m == nil {
		return nil, fmt.Errorf("module not found: %q", moduleID)
	}
	for i := range m.Reading {
		if m.Reading[i].ID == itemID {
			mutate(&m.Reading[i])
			return s.touch(p), nil
		}
	}
	return nil, fmt.Errorf("reading item not found: %q", itemID)
}

func (s *programmeService) SetEffort(p *domain.Programme, moduleID, versionID string, modality domain.Modality, hours domain.EffortHours) ([]validate.Flag, error) {
	m := p.ModuleByID(moduleID)
	if m == nil {
		return nil, fmt.Errorf("module not found: %q", moduleID)
	}
	if p.VersionByID(versionID) == nil {
		return nil, fmt.Errorf("version not found: %q", versionID)
	}
	if m.Effort == nil {
		m.Effort = map[string]domain.EffortHours{}
	}
	m.Effort[domain.EffortKey(versionID, modality)] = hours
	return s.touch(p), nil
}

func (s *programmeService) resolveStage(p *domain.Programme, versionID, stageID string) (*domain.Stage, error) {
	v := p.VersionByID(versionID)
	if v == nil {
		return nil, fmt.Errorf("version not found: %q", versionID)
	}
	st := v.StageByID(stageID)
	if st == nil {
		return nil, fmt.Errorf("stage not found: %q", stageID)
	}
	return st, nil
}
