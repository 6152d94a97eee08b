package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/alexanderramin/sitepace/internal/domain"
)

// Period is a derived calendar bucket. Start and End are inclusive
// day-granular bounds with Start <= End always.
type Period struct {
	Key   string
	Label string
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the period bounds (inclusive).
func (p Period) Contains(d time.Time) bool {
	d = DateOnly(d)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days returns the period length in calendar days.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// PeriodOf buckets a date into its period for the given granularity.
// Weekly periods follow ISO 8601: Monday start, week 1 holds the year's
// first Thursday. Custom granularity degenerates to the single day; real
// custom ranges come from CustomPeriod.
func PeriodOf(d time.Time, g domain.Granularity) Period {
	d = DateOnly(d)
	switch g {
	case domain.GranDaily:
		key := d.Format("2006-01-02")
		return Period{Key: key, Label: key, Start: d, End: d}
	case domain.GranWeekly:
		isoYear, isoWeek := d.ISOWeek()
		start := mondayOf(d)
		end := start.AddDate(0, 0, 6)
		return Period{
			Key:   fmt.Sprintf("%04d-W%02d", isoYear, isoWeek),
			Label: fmt.Sprintf("W%02d %04d (%s to %s)", isoWeek, isoYear, start.Format("02 Jan"), end.Format("02 Jan")),
			Start: start,
			End:   end,
		}
	case domain.GranMonthly:
		start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Period{
			Key:   d.Format("2006-01"),
			Label: d.Format("January 2006"),
			Start: start,
			End:   start.AddDate(0, 1, -1),
		}
	default:
		return CustomPeriod(d, d)
	}
}

// CustomPeriod builds an explicit range period. Reversed bounds are swapped
// so Start <= End holds by construction.
func CustomPeriod(start, end time.Time) Period {
	start, end = DateOnly(start), DateOnly(end)
	if end.Before(start) {
		start, end = end, start
	}
	key := start.Format("2006-01-02") + ".." + end.Format("2006-01-02")
	return Period{
		Key:   key,
		Label: start.Format("02 Jan 2006") + " to " + end.Format("02 Jan 2006"),
		Start: start,
		End:   end,
	}
}

// PreviousPeriod returns the period immediately preceding p under the same
// granularity's boundary arithmetic. For custom ranges it is the window of
// equal length ending the day before p starts.
func PreviousPeriod(p Period, g domain.Granularity) Period {
	switch g {
	case domain.GranDaily, domain.GranWeekly, domain.GranMonthly:
		return PeriodOf(p.Start.AddDate(0, 0, -1), g)
	default:
		end := p.Start.AddDate(0, 0, -1)
		return CustomPeriod(end.AddDate(0, 0, -(p.Days()-1)), end)
	}
}

// NextPeriod returns the period immediately following p.
func NextPeriod(p Period, g domain.Granularity) Period {
	switch g {
	case domain.GranDaily, domain.GranWeekly, domain.GranMonthly:
		return PeriodOf(p.End.AddDate(0, 0, 1), g)
	default:
		start := p.End.AddDate(0, 0, 1)
		return CustomPeriod(start, start.AddDate(0, 0, p.Days()-1))
	}
}

// PeriodsFrom returns count consecutive periods starting with the one
// containing from. Used to lay out forecast horizons.
func PeriodsFrom(from time.Time, g domain.Granularity, count int) []Period {
	periods := make([]Period, 0, count)
	p := PeriodOf(from, g)
	for i := 0; i < count; i++ {
		periods = append(periods, p)
		p = NextPeriod(p, g)
	}
	return periods
}

// PeriodKey is shorthand for PeriodOf(d, g).Key.
func PeriodKey(d time.Time, g domain.Granularity) string {
	return PeriodOf(d, g).Key
}

var (
	dailyKeyPattern   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	weeklyKeyPattern  = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)
	monthlyKeyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	customKeyPattern  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\.\.(\d{4}-\d{2}-\d{2})$`)
)

// PeriodFromKey reconstructs a period from its key. The granularity is
// inferred from the key's shape.
func PeriodFromKey(key string) (Period, error) {
	switch {
	case dailyKeyPattern.MatchString(key):
		d, err := time.Parse("2006-01-02", key)
		if err != nil {
			return Period{}, fmt.Errorf("parsing daily period key %q: %w", key, err)
		}
		return PeriodOf(d, domain.GranDaily), nil
	case weeklyKeyPattern.MatchString(key):
		m := weeklyKeyPattern.FindStringSubmatch(key)
		year, _ := strconv.Atoi(m[1])
		week, _ := strconv.Atoi(m[2])
		if week < 1 || week > 53 {
			return Period{}, fmt.Errorf("week %d out of range in period key %q", week, key)
		}
		return PeriodOf(isoWeekStart(year, week), domain.GranWeekly), nil
	case monthlyKeyPattern.MatchString(key):
		d, err := time.Parse("2006-01", key)
		if err != nil {
			return Period{}, fmt.Errorf("parsing monthly period key %q: %w", key, err)
		}
		return PeriodOf(d, domain.GranMonthly), nil
	case customKeyPattern.MatchString(key):
		m := customKeyPattern.FindStringSubmatch(key)
		start, err := time.Parse("2006-01-02", m[1])
		if err != nil {
			return Period{}, fmt.Errorf("parsing custom period key %q: %w", key, err)
		}
		end, err := time.Parse("2006-01-02", m[2])
		if err != nil {
			return Period{}, fmt.Errorf("parsing custom period key %q: %w", key, err)
		}
		return CustomPeriod(start, end), nil
	}
	return Period{}, fmt.Errorf("unrecognized period key %q", key)
}

// mondayOf returns the Monday of d's ISO week.
func mondayOf(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return DateOnly(d).AddDate(0, 0, -offset)
}

// isoWeekStart returns the Monday of the given ISO week. January 4th is
// always inside week 1.
func isoWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, time.UTC)
	return mondayOf(jan4).AddDate(0, 0, (week-1)*7)
}
