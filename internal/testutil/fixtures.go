package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/sitepace/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithSubCode(sub string) ProjectOption {
	return func(p *domain.Project) {
		p.SubCode = sub
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithContract(currency string, amount float64) ProjectOption {
	return func(p *domain.Project) {
		p.Currency = currency
		p.ContractAmount = amount
	}
}

func NewTestProject(code, name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      name,
		Status:    domain.ProjectOnGoing,
		Division:  "Civil",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WorkItem options
type WorkItemOption func(*domain.WorkItem)

func WithZone(zone string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Zone = zone
	}
}

func WithScope(total float64, unit string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.TotalUnits = total
		w.Unit = unit
	}
}

func WithRate(rate float64) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Rate = rate
	}
}

func WithTotalValue(v float64) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.TotalValue = v
	}
}

func WithCompleted() WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Completed = true
	}
}

func WithPlannedStart(d time.Time) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.PlannedStart = &d
	}
}

func NewTestWorkItem(projectCode, description string, opts ...WorkItemOption) *domain.WorkItem {
	now := time.Now().UTC()
	w := &domain.WorkItem{
		ID:          uuid.New().String(),
		ProjectCode: projectCode,
		Description: description,
		Division:    "Civil",
		Unit:        "m3",
		TotalUnits:  100,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewTestEntry builds a progress entry reconciling against the given
// project code and activity description.
func NewTestEntry(projectCode, activity, inputType string, day time.Time, qty float64) *domain.ProgressEntry {
	return &domain.ProgressEntry{
		ID:                  uuid.New().String(),
		ProjectCode:         projectCode,
		ActivityDescription: activity,
		InputType:           inputType,
		Date:                day,
		Quantity:            qty,
		CreatedAt:           time.Now().UTC(),
	}
}

// WithEntryZone tags an entry with a zone label.
func WithEntryZone(e *domain.ProgressEntry, zone string) *domain.ProgressEntry {
	e.Zone = zone
	return e
}
