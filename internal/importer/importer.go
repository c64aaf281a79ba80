// Package importer reads programme documents from external JSON files.
// Imported files go through the same migration chain as stored
// snapshots, then a structural check that accumulates every problem
// rather than stopping at the first.
package importer

import (
	"fmt"
	"os"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/store"
)

// ReadFile loads, migrates and decodes a document file, then runs the
// structural check. The document is returned even when structural
// errors are found so the caller can show them alongside a preview.
func ReadFile(path string) (*domain.Programme, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading import file: %w", err)
	}
	p, err := store.DecodeDocument(data)
	if err != nil {
		return nil, nil, fmt.Errorf("import file %s: %w", path, err)
	}
	return p, ValidateDocument(p), nil
}

// ValidateDocument checks referential integrity of an imported
// document: unique IDs, no dangling module references, recognised
// enum values. Returns every violation found.
func ValidateDocument(p *domain.Programme) []error {
	var errs []error

	if p.ID == "" {
		errs = append(errs, fmt.Errorf("document has no id"))
	}

	moduleIDs := make(map[string]bool)
	for i := range p.Modules {
		m := &p.Modules[i]
		if m.ID == "" {
			errs = append(errs, fmt.Errorf("module %d has no id", i+1))
			continue
		}
		if moduleIDs[m.ID] {
			errs = append(errs, fmt.Errorf("duplicate module id %q", m.ID))
		}
		moduleIDs[m.ID] = true
		errs = append(errs, validateModule(m)...)
	}

	ploIDs := make(map[string]bool)
	for i := range p.PLOs {
		plo := &p.PLOs[i]
		if plo.ID == "" {
			errs = append(errs, fmt.Errorf("learning outcome %d has no id", i+1))
			continue
		}
		if ploIDs[plo.ID] {
			errs = append(errs, fmt.Errorf("duplicate learning outcome id %q", plo.ID))
		}
		ploIDs[plo.ID] = true
	}

	for ploID, mods := range p.PLOModuleMap {
		if !ploIDs[ploID] {
			errs = append(errs, fmt.Errorf("outcome mapping refers to unknown learning outcome %q", ploID))
		}
		for _, modID := range mods {
			if !moduleIDs[modID] {
				errs = append(errs, fmt.Errorf("outcome %q is mapped to unknown module %q", ploID, modID))
			}
		}
	}

	versionIDs := make(map[string]bool)
	for i := range p.Versions {
		v := &p.Versions[i]
		if v.ID == "" {
			errs = append(errs, fmt.Errorf("version %d has no id", i+1))
			continue
		}
		if versionIDs[v.ID] {
			errs = append(errs, fmt.Errorf("duplicate version id %q", v.ID))
		}
		versionIDs[v.ID] = true

		if v.Modality != "" && !domain.ValidModalities[string(v.Modality)] {
			errs = append(errs, fmt.Errorf("version %q has unknown modality %q", v.Label, v.Modality))
		}
		for si := range v.Stages {
			st := &v.Stages[si]
			for _, slot := range st.Slots {
				if !moduleIDs[slot.ModuleID] {
					errs = append(errs, fmt.Errorf("stage %q refers to unknown module %q", st.Name, slot.ModuleID))
				}
			}
		}
	}

	return errs
}

func validateModule(m *domain.Module) []error {
	var errs []error

	mimloIDs := make(map[string]bool)
	for _, mlo := range m.MIMLOs {
		if mlo.ID == "" {
			errs = append(errs, fmt.Errorf("module %q has a learning outcome without an id", m.DisplayLabel()))
			continue
		}
		if mimloIDs[mlo.ID] {
			errs = append(errs, fmt.Errorf("module %q has duplicate outcome id %q", m.DisplayLabel(), mlo.ID))
		}
		mimloIDs[mlo.ID] = true
	}

	assessIDs := make(map[string]bool)
	for i := range m.Assessments {
		a := &m.Assessments[i]
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("module %q assessment %d has no id", m.DisplayLabel(), i+1))
			continue
		}
		if assessIDs[a.ID] {
			errs = append(errs, fmt.Errorf("module %q has duplicate assessment id %q", m.DisplayLabel(), a.ID))
		}
		assessIDs[a.ID] = true

		if a.Weighting < 0 || a.Weighting > 100 {
			errs = append(errs, fmt.Errorf("assessment %q has weighting %d%%, expected 0-100", a.Title, a.Weighting))
		}
		for _, cover := range a.Covers {
			if !mimloIDs[cover] {
				errs = append(errs, fmt.Errorf("assessment %q covers unknown outcome %q", a.Title, cover))
			}
		}
	}

	return errs
}
