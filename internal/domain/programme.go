package domain

import "time"

// CurrentSchemaVersion is the document schema written by this build.
// Older persisted documents are upgraded through the migrate package.
const CurrentSchemaVersion = 3

// Programme is the root aggregate. It owns every child entity by value;
// Stages and the PLO mapping refer to Modules by ID only.
type Programme struct {
	ID            string              `json:"id"`
	SchemaVersion int                 `json:"schemaVersion"`
	Title         string              `json:"title"`
	AwardType     AwardType           `json:"awardType"`
	NFQLevel      int                 `json:"nfqLevel"`
	School        string              `json:"school"`
	StandardRefs  []string            `json:"standardRefs"`
	TotalCredits  int                 `json:"totalCredits"`
	Modules       []Module            `json:"modules"`
	PLOs          []PLO               `json:"plos"`
	PLOModuleMap  map[string][]string `json:"ploModuleMap"`
	Versions      []Version           `json:"versions"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// NewProgramme returns a fresh document with the defaults the wizard
// starts from.
func NewProgramme(id string) *Programme {
	now := time.Now().UTC()
	return &Programme{
		ID:            id,
		SchemaVersion: CurrentSchemaVersion,
		AwardType:     AwardMajor,
		NFQLevel:      MinNFQLevel,
		StandardRefs:  []string{},
		Modules:       []Module{},
		PLOs:          []PLO{},
		PLOModuleMap:  map[string][]string{},
		Versions:      []Version{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ModuleByID returns the module with the given ID, or nil.
func (p *Programme) ModuleByID(id string) *Module {
	for i := range p.Modules {
		if p.Modules[i].ID == id {
			return &p.Modules[i]
		}
	}
	return nil
}

// PLOByID returns the PLO with the given ID, or nil.
func (p *Programme) PLOByID(id string) *PLO {
	for i := range p.PLOs {
		if p.PLOs[i].ID == id {
			return &p.PLOs[i]
		}
	}
	return nil
}

// VersionByID returns the version with the given ID, or nil.
func (p *Programme) VersionByID(id string) *Version {
	for i := range p.Versions {
		if p.Versions[i].ID == id {
			return &p.Versions[i]
		}
	}
	return nil
}

// ModuleCreditSum returns the summed credit count across all modules.
func (p *Programme) ModuleCreditSum() int {
	total := 0
	for i := range p.Modules {
		total += p.Modules[i].Credits
	}
	return total
}

// MappedModules returns the module IDs mapped to the given PLO.
func (p *Programme) MappedModules(ploID string) []string {
	return p.PLOModuleMap[ploID]
}

// RemoveModule splices the module out of the document and strips every
// dangling reference to it: PLO mappings and stage slots across all
// versions. Returns false if the ID is unknown.
func (p *Programme) RemoveModule(id string) bool {
	idx := -1
	for i := range p.Modules {
		if p.Modules[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	p.Modules = append(p.Modules[:idx], p.Modules[idx+1:]...)

	for ploID, mods := range p.PLOModuleMap {
		kept := mods[:0]
		for _, m := range mods {
			if m != id {
				kept = append(kept, m)
			}
		}
		p.PLOModuleMap[ploID] = kept
	}

	for vi := range p.Versions {
		for si := range p.Versions[vi].Stages {
			stage := &p.Versions[vi].Stages[si]
			kept := stage.Slots[:0]
			for _, slot := range stage.Slots {
				if slot.ModuleID != id {
					kept = append(kept, slot)
				}
			}
			stage.Slots = kept
		}
	}
	return true
}

// RemovePLO splices the PLO out and drops its module mapping entry.
func (p *Programme) RemovePLO(id string) bool {
	idx := -1
	for i := range p.PLOs {
		if p.PLOs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	p.PLOs = append(p.PLOs[:idx], p.PLOs[idx+1:]...)
	delete(p.PLOModuleMap, id)
	return true
}

// RemoveVersion splices the version (and all its stages) out.
func (p *Programme) RemoveVersion(id string) bool {
	for i := range p.Versions {
		if p.Versions[i].ID == id {
			p.Versions = append(p.Versions[:i], p.Versions[i+1:]...)
			return true
		}
	}
	return false
}

// MapPLO records that the PLO is delivered by the given module. The
// mapping is idempotent.
func (p *Programme) MapPLO(ploID, moduleID string) {
	if p.PLOModuleMap == nil {
		p.PLOModuleMap = map[string][]string{}
	}
	for _, m := range p.PLOModuleMap[ploID] {
		if m == moduleID {
			return
		}
	}
	p.PLOModuleMap[ploID] = append(p.PLOModuleMap[ploID], moduleID)
}

// UnmapPLO removes a single PLO-to-module association.
func (p *Programme) UnmapPLO(ploID, moduleID string) {
	mods := p.PLOModuleMap[ploID]
	for i, m := range mods {
		if m == moduleID {
			p.PLOModuleMap[ploID] = append(mods[:i], mods[i+1:]...)
			return
		}
	}
}
