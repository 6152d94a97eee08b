package repository

import (
	"context"

	"github.com/alexanderramin/sitepace/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByCode(ctx context.Context, code string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type WorkItemRepo interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	ListByProjectCode(ctx context.Context, code string) ([]*domain.WorkItem, error)
	List(ctx context.Context) ([]*domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	Delete(ctx context.Context, id string) error
}

type ProgressEntryRepo interface {
	Create(ctx context.Context, e *domain.ProgressEntry) error
	CreateBatch(ctx context.Context, entries []*domain.ProgressEntry) error
	ListByProjectCode(ctx context.Context, code string) ([]*domain.ProgressEntry, error)
	List(ctx context.Context) ([]*domain.ProgressEntry, error)
	Delete(ctx context.Context, id string) error
}
