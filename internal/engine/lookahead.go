package engine

import (
	"math"
	"time"

	"github.com/alexanderramin/sitepace/internal/domain"
)

// ActivityLookAhead is the forward-looking forecast for one work item.
type ActivityLookAhead struct {
	Item  domain.WorkItem
	State domain.ActivityState

	CumulativePlanned float64
	CumulativeActual  float64
	RemainingUnits    float64

	// Productivity in units per working day. Productivity is the effective
	// figure used for projection: actual when computable, else planned.
	PlannedProductivity float64
	ActualProductivity  float64
	Productivity        float64

	// RemainingWorkingDays is nil when productivity is zero: the item's
	// completion is undeterminable, which is not the same as zero days.
	RemainingWorkingDays *int
	PredictedCompletion  *time.Time
}

// BuildActivityLookAhead classifies a work item and projects its remaining
// scope forward from now over the working-day calendar. matched is the
// entry set already reconciled to this item.
func BuildActivityLookAhead(w domain.WorkItem, matched []domain.ProgressEntry, now time.Time, cal Calendar) ActivityLookAhead {
	today := DateOnly(now)

	la := ActivityLookAhead{Item: w}

	var actualDates, plannedDates []time.Time
	for _, e := range matched {
		t, err := domain.ParseInputType(e.InputType)
		if err != nil {
			continue
		}
		switch t {
		case domain.InputPlanned:
			la.CumulativePlanned += e.Quantity
			plannedDates = append(plannedDates, e.Date)
		case domain.InputActual:
			la.CumulativeActual += e.Quantity
			actualDates = append(actualDates, e.Date)
		}
	}
	la.RemainingUnits = math.Max(w.TotalUnits-la.CumulativeActual, 0)

	progressPct := safePct(la.CumulativeActual, w.TotalUnits)

	switch {
	case w.Completed,
		progressPct >= 100,
		w.ActualCompletion != nil && !DateOnly(*w.ActualCompletion).After(today):
		la.State = domain.StateCompleted
		return la
	case w.PlannedStart != nil && DateOnly(*w.PlannedStart).Before(today) &&
		w.ActualStart == nil && la.CumulativeActual == 0:
		la.State = domain.StateDelayedNotStarted
	default:
		la.State = domain.StateInProgress
	}

	if days := cal.SpannedWorkingDays(actualDates); days > 0 {
		la.ActualProductivity = la.CumulativeActual / float64(days)
	}
	if days := cal.SpannedWorkingDays(plannedDates); days > 0 {
		la.PlannedProductivity = la.CumulativePlanned / float64(days)
	}

	// Stalled or unstarted items have no usable actual pace; fall back to
	// the planned pace rather than dividing by zero.
	la.Productivity = la.ActualProductivity
	if la.Productivity <= 0 {
		la.Productivity = la.PlannedProductivity
	}

	if la.Productivity > 0 {
		days := int(math.Ceil(la.RemainingUnits / la.Productivity))
		la.RemainingWorkingDays = &days
		predicted := cal.AddWorkingDays(today, days)
		la.PredictedCompletion = &predicted
	}

	return la
}

// ProjectLookAhead rolls activity forecasts up to one project.
type ProjectLookAhead struct {
	Project    domain.Project
	Activities []ActivityLookAhead

	// LatestCompletion is the maximum predicted completion date over the
	// project's non-completed activities, nil when none is determinable.
	LatestCompletion *time.Time
}

// HasRemainingWork reports whether any activity is still open. Projects
// without remaining work are excluded from forward-looking reports.
func (p ProjectLookAhead) HasRemainingWork() bool {
	for _, a := range p.Activities {
		if a.State != domain.StateCompleted {
			return true
		}
	}
	return false
}

// BuildProjectLookAhead forecasts every work item belonging to the project.
// Completed items are excluded from the latest-completion maximum.
func BuildProjectLookAhead(p domain.Project, items []domain.WorkItem, entries []domain.ProgressEntry, now time.Time, cal Calendar) ProjectLookAhead {
	pla := ProjectLookAhead{Project: p}

	for _, w := range items {
		if !ItemBelongsToProject(w, p) {
			continue
		}
		la := BuildActivityLookAhead(w, MatchedEntries(entries, w, false), now, cal)
		pla.Activities = append(pla.Activities, la)

		if la.State == domain.StateCompleted || la.PredictedCompletion == nil {
			continue
		}
		if pla.LatestCompletion == nil || la.PredictedCompletion.After(*pla.LatestCompletion) {
			d := *la.PredictedCompletion
			pla.LatestCompletion = &d
		}
	}

	return pla
}

// ItemBelongsToProject links a work item to a project by code. A sub-coded
// project requires an exact full-code match; otherwise code and full code
// are interchangeable, mirroring the entry-side project tier.
func ItemBelongsToProject(w domain.WorkItem, p domain.Project) bool {
	projCode := NormalizeProjectCode(p.Code)
	projFull := NormalizeProjectCode(p.FullCode())
	itemCode := NormalizeProjectCode(w.ProjectCode)
	itemFull := NormalizeProjectCode(w.ProjectFullCode)

	if p.SubCode != "" {
		return itemFull == projFull
	}
	for _, item := range []string{itemCode, itemFull} {
		if item == "" {
			continue
		}
		if item == projCode || item == projFull {
			return true
		}
	}
	return false
}
