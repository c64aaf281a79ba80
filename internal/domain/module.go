package domain

import "fmt"

// MIMLO is a minimum intended module learning outcome.
type MIMLO struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// EffortHours breaks a learner's workload for one version+modality pair
// into seven buckets. Ratio strings are free-form ("1:2" etc.) and are
// carried verbatim into the exported document.
type EffortHours struct {
	Lecture      int    `json:"lecture"`
	Tutorial     int    `json:"tutorial"`
	Practical    int    `json:"practical"`
	SyncOnline   int    `json:"syncOnline"`
	AsyncOnline  int    `json:"asyncOnline"`
	Independent  int    `json:"independent"`
	WorkPlace    int    `json:"workPlace"`
	ContactRatio string `json:"contactRatio,omitempty"`
	StaffRatio   string `json:"staffRatio,omitempty"`
}

// Total returns the summed hours across all buckets.
func (e EffortHours) Total() int {
	return e.Lecture + e.Tutorial + e.Practical + e.SyncOnline +
		e.AsyncOnline + e.Independent + e.WorkPlace
}

// EffortKey builds the composite key under which a module stores effort
// hours for one version and modality.
func EffortKey(versionID string, m Modality) string {
	return fmt.Sprintf("%s|%s", versionID, m)
}

// Module is a teaching unit. Owned by the programme; referenced by
// stage slots and the PLO module map.
type Module struct {
	ID          string                 `json:"id"`
	Code        string                 `json:"code"`
	Title       string                 `json:"title"`
	Credits     int                    `json:"credits"`
	Elective    bool                   `json:"elective"`
	MIMLOs      []MIMLO                `json:"mimlos"`
	Assessments []Assessment           `json:"assessments"`
	Effort      map[string]EffortHours `json:"effort"`
	Reading     []ReadingItem          `json:"reading"`
}

// NewModule returns a module with empty child collections.
func NewModule(id, code, title string, credits int) Module {
	return Module{
		ID:          id,
		Code:        code,
		Title:       title,
		Credits:     credits,
		MIMLOs:      []MIMLO{},
		Assessments: []Assessment{},
		Effort:      map[string]EffortHours{},
		Reading:     []ReadingItem{},
	}
}

// DisplayLabel returns "CODE — Title", falling back to whichever part
// is present.
func (m *Module) DisplayLabel() string {
	switch {
	case m.Code != "" && m.Title != "":
		return m.Code + " — " + m.Title
	case m.Code != "":
		return m.Code
	default:
		return m.Title
	}
}

// MIMLOByID returns the outcome with the given ID, or nil.
func (m *Module) MIMLOByID(id string) *MIMLO {
	for i := range m.MIMLOs {
		if m.MIMLOs[i].ID == id {
			return &m.MIMLOs[i]
		}
	}
	return nil
}

// AssessmentByID returns the assessment with the given ID, or nil.
func (m *Module) AssessmentByID(id string) *Assessment {
	for i := range m.Assessments {
		if m.Assessments[i].ID == id {
			return &m.Assessments[i]
		}
	}
	return nil
}

// RemoveMIMLO splices the outcome out and strips its ID from every
// assessment's coverage list.
func (m *Module) RemoveMIMLO(id string) bool {
	idx := -1
	for i := range m.MIMLOs {
		if m.MIMLOs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	m.MIMLOs = append(m.MIMLOs[:idx], m.MIMLOs[idx+1:]...)
	for ai := range m.Assessments {
		a := &m.Assessments[ai]
		kept := a.Covers[:0]
		for _, c := range a.Covers {
			if c != id {
				kept = append(kept, c)
			}
		}
		a.Covers = kept
	}
	return true
}

// RemoveAssessment splices the assessment out of the module.
func (m *Module) RemoveAssessment(id string) bool {
	for i := range m.Assessments {
		if m.Assessments[i].ID == id {
			m.Assessments = append(m.Assessments[:i], m.Assessments[i+1:]...)
			return true
		}
	}
	return false
}

// WeightingSum returns the summed assessment weighting percentages.
func (m *Module) WeightingSum() int {
	total := 0
	for i := range m.Assessments {
		total += m.Assessments[i].Weighting
	}
	return total
}
