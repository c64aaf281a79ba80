package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/provost/internal/biblio"
	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/store"
)

type lookupService struct {
	filler *biblio.Filler
	saver  *store.Saver
}

// NewLookupService wires the ISBN filler to reading-list entries.
func NewLookupService(filler *biblio.Filler, saver *store.Saver) LookupService {
	return &lookupService{filler: filler, saver: saver}
}

// FillReading looks up the item's ISBN and copies the metadata onto
// empty fields. Hand-edited fields are never overwritten, and a lookup
// that raced a manual edit is discarded entirely.
func (s *lookupService) FillReading(ctx context.Context, p *domain.Programme, moduleID, itemID string) error {
	m := p.ModuleByID(moduleID)
	if m == nil {
		return fmt.Errorf("module not found: %q", moduleID)
	}
	var item *domain.ReadingItem
	for i := range m.Reading {
		if m.Reading[i].ID == itemID {
			item = &m.Reading[i]
			break
		}
	}
	if item == nil {
		return fmt.Errorf("reading item not found: %q", itemID)
	}
	if item.ISBN == "" {
		return fmt.Errorf("reading item %q has no ISBN", itemID)
	}

	err := s.filler.Fill(ctx, itemID, item.ISBN, func(md biblio.Metadata) {
		item.Author = domain.CoalesceStr(item.Author, md.Author)
		item.Title = domain.CoalesceStr(item.Title, md.Title)
		item.Publisher = domain.CoalesceStr(item.Publisher, md.Publisher)
		item.Year = domain.CoalesceStr(item.Year, md.Year)
	})
	if err != nil {
		return err
	}
	s.saver.Touch(p)
	return nil
}
