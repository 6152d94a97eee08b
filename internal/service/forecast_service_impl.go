package service

import (
	"context"
	"time"

	"github.com/alexanderramin/sitepace/internal/app"
	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/alexanderramin/sitepace/internal/engine"
	"github.com/alexanderramin/sitepace/internal/repository"
)

const defaultForecastHorizon = 8

type forecastService struct {
	projects repository.ProjectRepo
	items    repository.WorkItemRepo
	entries  repository.ProgressEntryRepo
	calendar engine.Calendar
	observer UseCaseObserver
}

func NewForecastService(
	projects repository.ProjectRepo,
	items repository.WorkItemRepo,
	entries repository.ProgressEntryRepo,
	calendar engine.Calendar,
	observers ...UseCaseObserver,
) ForecastService {
	return &forecastService{
		projects: projects,
		items:    items,
		entries:  entries,
		calendar: calendar,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *forecastService) BuildForecast(ctx context.Context, req app.ForecastRequest) (resp *app.ForecastResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observeUseCase(ctx, s.observer, "cash-forecast", startedAt, err, fields) }()

	snap, err := loadSnapshot(ctx, s.projects, s.items, s.entries)
	if err != nil {
		return nil, err
	}

	granularity := req.Granularity
	if granularity == "" || granularity == domain.GranCustom {
		granularity = domain.GranWeekly
	}
	horizon := req.Horizon
	if horizon <= 0 {
		horizon = defaultForecastHorizon
	}
	fields["granularity"] = string(granularity)
	fields["horizon"] = horizon

	now := resolveNow(req.Now)
	table := engine.BuildForecastTable(snap.Projects, snap.Items, snap.Entries, now, granularity, horizon, s.calendar)
	fields["rows"] = len(table.Rows)

	return &app.ForecastResponse{
		Table:    table,
		Warnings: snap.linkageWarnings(),
	}, nil
}
