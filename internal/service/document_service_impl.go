package service

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/export"
	"github.com/alexanderramin/provost/internal/importer"
	"github.com/alexanderramin/provost/internal/store"
	"github.com/google/uuid"
)

type documentService struct {
	store store.Store
	saver *store.Saver
}

// NewDocumentService creates a DocumentService over the given store.
// The saver is shared with the programme service so edits and
// lifecycle operations coalesce into the same write stream.
func NewDocumentService(s store.Store, saver *store.Saver) DocumentService {
	return &documentService{store: s, saver: saver}
}

func (s *documentService) New(ctx context.Context, title string) (*domain.Programme, error) {
	p := domain.NewProgramme(uuid.New().String())
	p.Title = title
	if err := s.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving new document: %w", err)
	}
	return p, nil
}

func (s *documentService) Open(ctx context.Context, id string) (*domain.Programme, error) {
	return s.store.Load(ctx, id)
}

func (s *documentService) List(ctx context.Context) ([]store.DocumentInfo, error) {
	return s.store.List(ctx)
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *documentService) Import(ctx context.Context, path string) (*domain.Programme, []error, error) {
	return importer.ReadFile(path)
}

func (s *documentService) Adopt(ctx context.Context, p *domain.Programme) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := s.store.Save(ctx, p); err != nil {
		return fmt.Errorf("adopting imported document: %w", err)
	}
	return nil
}

func (s *documentService) ExportJSON(p *domain.Programme, w io.Writer) error {
	return export.WriteJSON(w, p)
}

func (s *documentService) ExportDocx(p *domain.Programme, templatePath, outPath string) error {
	return export.MergeFile(templatePath, outPath, export.Placeholders(p))
}

func (s *documentService) History(ctx context.Context, id string, limit int) ([]store.Autosave, error) {
	return s.store.History(ctx, id, limit)
}

func (s *documentService) Flush(ctx context.Context) error {
	return s.saver.Flush(ctx)
}
