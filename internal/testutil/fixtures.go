package testutil

import (
	"github.com/alexanderramin/provost/internal/domain"
	"github.com/google/uuid"
)

// Programme options
type ProgrammeOption func(*domain.Programme)

func WithTotalCredits(c int) ProgrammeOption {
	return func(p *domain.Programme) {
		p.TotalCredits = c
	}
}

func WithNFQLevel(l int) ProgrammeOption {
	return func(p *domain.Programme) {
		p.NFQLevel = l
	}
}

func WithStandardRefs(refs ...string) ProgrammeOption {
	return func(p *domain.Programme) {
		p.StandardRefs = refs
	}
}

func NewTestProgramme(title string, opts ...ProgrammeOption) *domain.Programme {
	p := domain.NewProgramme(uuid.New().String())
	p.Title = title
	p.School = "School of Computing"
	p.AwardType = domain.AwardMajor
	p.NFQLevel = 8
	p.TotalCredits = 60
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Module options
type ModuleOption func(*domain.Module)

func WithElective() ModuleOption {
	return func(m *domain.Module) {
		m.Elective = true
	}
}

func WithMIMLO(id, text string) ModuleOption {
	return func(m *domain.Module) {
		m.MIMLOs = append(m.MIMLOs, domain.MIMLO{ID: id, Text: text})
	}
}

func WithAssessment(a domain.Assessment) ModuleOption {
	return func(m *domain.Module) {
		m.Assessments = append(m.Assessments, a)
	}
}

// AddTestModule appends a module to the programme and returns a pointer
// into the programme's slice.
func AddTestModule(p *domain.Programme, code, title string, credits int, opts ...ModuleOption) *domain.Module {
	m := domain.NewModule(uuid.New().String(), code, title, credits)
	for _, opt := range opts {
		opt(&m)
	}
	p.Modules = append(p.Modules, m)
	return &p.Modules[len(p.Modules)-1]
}

// NewTestAssessment returns an assessment covering the given MIMLO IDs.
func NewTestAssessment(title, typ string, weighting int, covers ...string) domain.Assessment {
	a := domain.NewAssessment(uuid.New().String(), title, typ, weighting)
	a.Covers = append(a.Covers, covers...)
	return a
}

// AddTestVersion appends a full-time on-site version with a single
// stage holding every module currently on the programme.
func AddTestVersion(p *domain.Programme, label string) *domain.Version {
	v := domain.NewVersion(uuid.New().String(), label)
	st := domain.NewStage(uuid.New().String(), "Year 1", 1)
	st.CreditsTarget = p.TotalCredits
	for i := range p.Modules {
		st.AssignModule(p.Modules[i].ID, "S1")
	}
	v.Stages = append(v.Stages, st)
	p.Versions = append(p.Versions, v)
	return &p.Versions[len(p.Versions)-1]
}

// AddTestPLO appends a PLO mapped to the given modules.
func AddTestPLO(p *domain.Programme, text string, moduleIDs ...string) *domain.PLO {
	plo := domain.NewPLO(uuid.New().String(), text)
	p.PLOs = append(p.PLOs, plo)
	for _, mid := range moduleIDs {
		p.MapPLO(plo.ID, mid)
	}
	return &p.PLOs[len(p.PLOs)-1]
}
