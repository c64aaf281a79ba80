package domain

// IntegrityControls records which academic-integrity safeguards an
// assessment applies.
type IntegrityControls struct {
	Invigilated       bool `json:"invigilated"`
	IdentityVerified  bool `json:"identityVerified"`
	SimilarityChecked bool `json:"similarityChecked"`
	VivaFollowUp      bool `json:"vivaFollowUp"`
	RestrictedWindow  bool `json:"restrictedWindow"`
}

// Assessment is a single assessment instrument within a module. Covers
// lists the MIMLO IDs the instrument assesses.
type Assessment struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Type      string            `json:"type"`
	Weighting int               `json:"weighting"`
	Mode      string            `json:"mode,omitempty"`
	Integrity IntegrityControls `json:"integrity"`
	Covers    []string          `json:"covers"`
	Notes     string            `json:"notes,omitempty"`
}

// NewAssessment returns an assessment with an empty coverage list.
func NewAssessment(id, title, typ string, weighting int) Assessment {
	return Assessment{
		ID:        id,
		Title:     title,
		Type:      typ,
		Weighting: weighting,
		Covers:    []string{},
	}
}

// CoversMIMLO reports whether the assessment covers the given outcome.
func (a *Assessment) CoversMIMLO(mimloID string) bool {
	for _, c := range a.Covers {
		if c == mimloID {
			return true
		}
	}
	return false
}
