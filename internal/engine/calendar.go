package engine

import "time"

// Calendar answers working-day questions for the project week.
// The zero-configuration default treats Friday and Saturday as the weekend.
type Calendar struct {
	weekend map[time.Weekday]bool
}

// DefaultCalendar returns the standard site calendar (Friday/Saturday weekend).
func DefaultCalendar() Calendar {
	return NewCalendar(time.Friday, time.Saturday)
}

// NewCalendar builds a calendar with the given weekend days.
func NewCalendar(weekend ...time.Weekday) Calendar {
	m := make(map[time.Weekday]bool, len(weekend))
	for _, d := range weekend {
		m[d] = true
	}
	return Calendar{weekend: m}
}

// IsWorkingDay reports whether d falls outside the weekend.
func (c Calendar) IsWorkingDay(d time.Time) bool {
	return !c.weekend[d.Weekday()]
}

// WorkingDaysBetween counts working days in [from, to] inclusive.
// Returns 0 when from is after to.
func (c Calendar) WorkingDaysBetween(from, to time.Time) int {
	from, to = DateOnly(from), DateOnly(to)
	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// WorkingDaysInPeriod counts working days inside the period bounds.
func (c Calendar) WorkingDaysInPeriod(p Period) int {
	return c.WorkingDaysBetween(p.Start, p.End)
}

// AddWorkingDays returns the n-th working day strictly after from.
// With n <= 0 the (date-truncated) origin is returned unchanged.
func (c Calendar) AddWorkingDays(from time.Time, n int) time.Time {
	d := DateOnly(from)
	for i := 0; i < n; {
		d = d.AddDate(0, 0, 1)
		if c.IsWorkingDay(d) {
			i++
		}
	}
	return d
}

// SpannedWorkingDays counts working days between the earliest and latest of
// the given dates, inclusive. This is the elapsed-duration denominator for
// productivity: sparse recording inside the span still consumes calendar time.
// Returns 0 for an empty slice.
func (c Calendar) SpannedWorkingDays(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	first, last := DateOnly(dates[0]), DateOnly(dates[0])
	for _, d := range dates[1:] {
		d = DateOnly(d)
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}
	return c.WorkingDaysBetween(first, last)
}

// DateOnly truncates t to midnight UTC. All engine date arithmetic is
// day-granular; times of day on input records are ignored.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
