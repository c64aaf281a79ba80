package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/provost/internal/domain"
)

// resolveDocumentID matches the input against stored document IDs:
// exact match first, then unique prefix.
func resolveDocumentID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("document ID is required")
	}

	infos, err := app.Documents.List(ctx)
	if err != nil {
		return "", err
	}

	for _, info := range infos {
		if info.ID == input {
			return info.ID, nil
		}
	}

	var matches []string
	for _, info := range infos {
		if strings.HasPrefix(info.ID, input) {
			matches = append(matches, info.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("document not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("document ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// openDocument resolves the ID and loads the document.
func openDocument(ctx context.Context, app *App, input string) (*domain.Programme, error) {
	id, err := resolveDocumentID(ctx, app, input)
	if err != nil {
		return nil, err
	}
	return app.Documents.Open(ctx, id)
}

// resolveModule matches a module by exact code (case-insensitive),
// exact ID, or unique ID prefix.
func resolveModule(p *domain.Programme, input string) (*domain.Module, error) {
	if input == "" {
		return nil, fmt.Errorf("module is required")
	}

	for i := range p.Modules {
		if strings.EqualFold(p.Modules[i].Code, input) {
			return &p.Modules[i], nil
		}
	}
	if m := p.ModuleByID(input); m != nil {
		return m, nil
	}

	var matches []*domain.Module
	for i := range p.Modules {
		if strings.HasPrefix(p.Modules[i].ID, input) {
			matches = append(matches, &p.Modules[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("module not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("module %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveVersion matches a version by exact label (case-insensitive),
// exact ID, or unique ID prefix.
func resolveVersion(p *domain.Programme, input string) (*domain.Version, error) {
	if input == "" {
		if len(p.Versions) == 1 {
			return &p.Versions[0], nil
		}
		return nil, fmt.Errorf("version is required")
	}

	for i := range p.Versions {
		if strings.EqualFold(p.Versions[i].Label, input) {
			return &p.Versions[i], nil
		}
	}
	if v := p.VersionByID(input); v != nil {
		return v, nil
	}

	var matches []*domain.Version
	for i := range p.Versions {
		if strings.HasPrefix(p.Versions[i].ID, input) {
			matches = append(matches, &p.Versions[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("version not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("version %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolvePLO matches a programme learning outcome by position ("PLO3"
// or "3"), exact ID, or unique ID prefix.
func resolvePLO(p *domain.Programme, input string) (*domain.PLO, error) {
	if input == "" {
		return nil, fmt.Errorf("learning outcome is required")
	}

	num := strings.TrimPrefix(strings.ToUpper(input), "PLO")
	for i := range p.PLOs {
		if num == fmt.Sprintf("%d", i+1) {
			return &p.PLOs[i], nil
		}
	}
	if plo := p.PLOByID(input); plo != nil {
		return plo, nil
	}

	var matches []*domain.PLO
	for i := range p.PLOs {
		if strings.HasPrefix(p.PLOs[i].ID, input) {
			matches = append(matches, &p.PLOs[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("learning outcome not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("learning outcome %q is ambiguous (%d matches)", input, len(matches))
	}
}
