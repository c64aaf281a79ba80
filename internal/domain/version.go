package domain

// DeliveryPattern is the percentage split of contact time for a
// version's active modality. The three fields must sum to 100.
type DeliveryPattern struct {
	SyncPct   int `json:"syncPct"`
	AsyncPct  int `json:"asyncPct"`
	CampusPct int `json:"campusPct"`
}

// Total returns the summed percentages.
func (d DeliveryPattern) Total() int {
	return d.SyncPct + d.AsyncPct + d.CampusPct
}

// Version is a delivery variant of the programme, e.g. full-time or
// part-time. Stages belong to exactly one version.
type Version struct {
	ID           string          `json:"id"`
	Label        string          `json:"label"`
	Code         string          `json:"code"`
	Duration     string          `json:"duration"`
	Intakes      []string        `json:"intakes"`
	CohortSize   int             `json:"cohortSize"`
	GroupCount   int             `json:"groupCount"`
	Modality     Modality        `json:"modality"`
	Pattern      DeliveryPattern `json:"pattern"`
	Proctoring   ProctorStatus   `json:"proctoring"`
	ProctorNotes string          `json:"proctorNotes,omitempty"`
	Stages       []Stage         `json:"stages"`
}

// NewVersion returns a version with on-site defaults: all contact time
// on campus and proctoring undecided.
func NewVersion(id, label string) Version {
	return Version{
		ID:         id,
		Label:      label,
		Intakes:    []string{},
		Modality:   ModalityOnSite,
		Pattern:    DeliveryPattern{CampusPct: 100},
		Proctoring: ProctorUndecided,
		Stages:     []Stage{},
	}
}

// StageByID returns the stage with the given ID, or nil.
func (v *Version) StageByID(id string) *Stage {
	for i := range v.Stages {
		if v.Stages[i].ID == id {
			return &v.Stages[i]
		}
	}
	return nil
}

// RemoveStage splices the stage out of the version.
func (v *Version) RemoveStage(id string) bool {
	for i := range v.Stages {
		if v.Stages[i].ID == id {
			v.Stages = append(v.Stages[:i], v.Stages[i+1:]...)
			return true
		}
	}
	return false
}

// StageSlot assigns a module to a stage with a semester tag. Slots hold
// module IDs only; module data lives on the programme.
type StageSlot struct {
	ModuleID string `json:"moduleId"`
	Semester string `json:"semester"`
}

// Stage is a phase of a version, e.g. Year 1.
type Stage struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Sequence       int         `json:"sequence"`
	CreditsTarget  int         `json:"creditsTarget"`
	ExitAward      bool        `json:"exitAward"`
	ExitAwardTitle string      `json:"exitAwardTitle,omitempty"`
	Slots          []StageSlot `json:"slots"`
}

// NewStage returns a stage with the given sequence number.
func NewStage(id, name string, seq int) Stage {
	return Stage{ID: id, Name: name, Sequence: seq, Slots: []StageSlot{}}
}

// AssignModule adds a module slot unless the module is already assigned.
func (s *Stage) AssignModule(moduleID, semester string) bool {
	for _, slot := range s.Slots {
		if slot.ModuleID == moduleID {
			return false
		}
	}
	s.Slots = append(s.Slots, StageSlot{ModuleID: moduleID, Semester: semester})
	return true
}

// UnassignModule removes the slot holding the given module ID.
func (s *Stage) UnassignModule(moduleID string) bool {
	for i, slot := range s.Slots {
		if slot.ModuleID == moduleID {
			s.Slots = append(s.Slots[:i], s.Slots[i+1:]...)
			return true
		}
	}
	return false
}

// AssignedCredits sums the credits of the stage's modules as found on
// the programme. Unknown module IDs count as zero.
func (s *Stage) AssignedCredits(p *Programme) int {
	total := 0
	for _, slot := range s.Slots {
		if m := p.ModuleByID(slot.ModuleID); m != nil {
			total += m.Credits
		}
	}
	return total
}
