package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/alexanderramin/sitepace/internal/repository"
	"github.com/google/uuid"
)

type workItemService struct {
	items repository.WorkItemRepo
}

func NewWorkItemService(items repository.WorkItemRepo) WorkItemService {
	return &workItemService{items: items}
}

func (s *workItemService) Create(ctx context.Context, w *domain.WorkItem) error {
	if w.Description == "" {
		return fmt.Errorf("work item description is required")
	}
	if w.ProjectCode == "" && w.ProjectFullCode == "" {
		return fmt.Errorf("work item must reference a project code")
	}
	if w.TotalUnits < 0 || w.PlannedUnits < 0 || w.ActualUnits < 0 {
		return fmt.Errorf("work item quantities must not be negative")
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now
	return s.items.Create(ctx, w)
}

func (s *workItemService) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *workItemService) ListByProjectCode(ctx context.Context, code string) ([]*domain.WorkItem, error) {
	return s.items.ListByProjectCode(ctx, code)
}

func (s *workItemService) List(ctx context.Context) ([]*domain.WorkItem, error) {
	return s.items.List(ctx)
}

func (s *workItemService) Update(ctx context.Context, w *domain.WorkItem) error {
	w.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, w)
}

func (s *workItemService) MarkCompleted(ctx context.Context, id string) error {
	w, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	w.Completed = true
	if w.ActualCompletion == nil {
		w.ActualCompletion = &now
	}
	w.UpdatedAt = now
	return s.items.Update(ctx, w)
}

func (s *workItemService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}
