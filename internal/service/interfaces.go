package service

import (
	"context"

	"github.com/alexanderramin/sitepace/internal/app"
	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/alexanderramin/sitepace/internal/importer"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByCode(ctx context.Context, code string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type WorkItemService interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	ListByProjectCode(ctx context.Context, code string) ([]*domain.WorkItem, error)
	List(ctx context.Context) ([]*domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	MarkCompleted(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type EntryService interface {
	Record(ctx context.Context, e *domain.ProgressEntry) error
	RecordBatch(ctx context.Context, entries []*domain.ProgressEntry) error
	ListByProjectCode(ctx context.Context, code string) ([]*domain.ProgressEntry, error)
	List(ctx context.Context) ([]*domain.ProgressEntry, error)
	Delete(ctx context.Context, id string) error
}

type ReportService interface {
	BuildReport(ctx context.Context, req app.ReportRequest) (*app.ReportResponse, error)
}

type LookAheadService interface {
	BuildLookAhead(ctx context.Context, req app.LookAheadRequest) (*app.LookAheadResponse, error)
}

type ForecastService interface {
	BuildForecast(ctx context.Context, req app.ForecastRequest) (*app.ForecastResponse, error)
}

type ImportService interface {
	ImportSnapshot(ctx context.Context, snapshot *importer.SnapshotImport) (*app.ImportResult, error)
}
