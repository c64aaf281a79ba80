package domain

// StandardMapping ties a PLO to one criterion/thread pair of an award
// standard.
type StandardMapping struct {
	Criterion   string `json:"criterion"`
	Thread      string `json:"thread"`
	StandardRef string `json:"standardRef"`
}

// PLO is a programme learning outcome. Module delivery is recorded on
// the programme's PLOModuleMap, not here.
type PLO struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Mappings []StandardMapping `json:"mappings"`
}

// NewPLO returns a PLO with no standard mappings.
func NewPLO(id, text string) PLO {
	return PLO{ID: id, Text: text, Mappings: []StandardMapping{}}
}
