package domain

import "time"

// WorkItem is a single bill-of-quantities line: one measurable activity
// belonging to a project, optionally scoped to a zone. The free-text
// Description is the primary match key for progress entries.
type WorkItem struct {
	ID              string
	ProjectCode     string
	ProjectFullCode string
	Description     string
	Zone            string
	Division        string
	Unit            string

	// Scope
	TotalUnits   float64
	PlannedUnits float64
	ActualUnits  float64

	// Money
	Rate       float64
	TotalValue float64

	// Flags
	Completed bool
	Delayed   bool

	// Dates
	Deadline          *time.Time
	PlannedStart      *time.Time
	ActualStart       *time.Time
	PlannedCompletion *time.Time
	ActualCompletion  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContractRate derives the monetary rate per unit: total value spread over
// total units when both are positive, else the stored unit rate, else 0.
// A missing rate degrades to a zero-value forecast, it never errors.
func (w *WorkItem) ContractRate() float64 {
	if w.TotalValue > 0 && w.TotalUnits > 0 {
		return w.TotalValue / w.TotalUnits
	}
	if w.Rate > 0 {
		return w.Rate
	}
	return 0
}

// ProgressPercent is actual scope over total scope, 0 when total is 0.
func (w *WorkItem) ProgressPercent() float64 {
	if w.TotalUnits <= 0 {
		return 0
	}
	return w.ActualUnits / w.TotalUnits * 100
}

// IsComplete reports completion as of now: the explicit flag, 100% recorded
// progress, or an actual completion date that has passed.
func (w *WorkItem) IsComplete(now time.Time) bool {
	if w.Completed {
		return true
	}
	if w.ProgressPercent() >= 100 {
		return true
	}
	if w.ActualCompletion != nil && !w.ActualCompletion.After(now) {
		return true
	}
	return false
}

// IsDelayed reports whether any delay signal has fired as of now:
// the explicit flag, a passed deadline with progress below 100%, or a passed
// planned start with no actual start and zero recorded progress.
// A complete item is never delayed; completion wins over every delay signal.
func (w *WorkItem) IsDelayed(now time.Time) bool {
	if w.IsComplete(now) {
		return false
	}
	if w.Delayed {
		return true
	}
	if w.Deadline != nil && w.Deadline.Before(now) && w.ProgressPercent() < 100 {
		return true
	}
	if w.PlannedStart != nil && w.PlannedStart.Before(now) && w.ActualStart == nil && w.ActualUnits == 0 {
		return true
	}
	return false
}

// NotStarted reports whether no work has been recorded against the item.
func (w *WorkItem) NotStarted() bool {
	return w.ActualStart == nil && w.ActualUnits == 0
}
