package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/alexanderramin/sitepace/internal/repository"
	"github.com/google/uuid"
)

type entryService struct {
	entries repository.ProgressEntryRepo
}

func NewEntryService(entries repository.ProgressEntryRepo) EntryService {
	return &entryService{entries: entries}
}

func (s *entryService) Record(ctx context.Context, e *domain.ProgressEntry) error {
	if err := prepareEntry(e); err != nil {
		return err
	}
	return s.entries.Create(ctx, e)
}

func (s *entryService) RecordBatch(ctx context.Context, entries []*domain.ProgressEntry) error {
	for i, e := range entries {
		if err := prepareEntry(e); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return s.entries.CreateBatch(ctx, entries)
}

func prepareEntry(e *domain.ProgressEntry) error {
	if e.ActivityDescription == "" {
		return fmt.Errorf("activity description is required")
	}
	if e.ProjectCode == "" && e.ProjectFullCode == "" {
		return fmt.Errorf("entry must reference a project code")
	}
	if _, err := domain.ParseInputType(e.InputType); err != nil {
		return err
	}
	if e.Date.IsZero() {
		return fmt.Errorf("entry date is required")
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (s *entryService) ListByProjectCode(ctx context.Context, code string) ([]*domain.ProgressEntry, error) {
	return s.entries.ListByProjectCode(ctx, code)
}

func (s *entryService) List(ctx context.Context) ([]*domain.ProgressEntry, error) {
	return s.entries.List(ctx)
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}
