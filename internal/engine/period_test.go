package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sitepace/internal/domain"
)

func TestPeriodOf_Daily(t *testing.T) {
	p := PeriodOf(date(2026, 3, 11), domain.GranDaily)
	assert.Equal(t, "2026-03-11", p.Key)
	assert.Equal(t, date(2026, 3, 11), p.Start)
	assert.Equal(t, date(2026, 3, 11), p.End)
}

func TestPeriodOf_Weekly_ISOBounds(t *testing.T) {
	// Wednesday 2026-03-11 sits in W11, Monday 9th through Sunday 15th.
	p := PeriodOf(date(2026, 3, 11), domain.GranWeekly)
	assert.Equal(t, "2026-W11", p.Key)
	assert.Equal(t, date(2026, 3, 9), p.Start)
	assert.Equal(t, date(2026, 3, 15), p.End)
	assert.Contains(t, p.Label, "W11")
	assert.Contains(t, p.Label, "09 Mar")
	assert.Contains(t, p.Label, "15 Mar")
}

func TestPeriodOf_Weekly_YearBoundary(t *testing.T) {
	// 2021-01-01 is a Friday: ISO week 53 of 2020.
	p := PeriodOf(date(2021, 1, 1), domain.GranWeekly)
	assert.Equal(t, "2020-W53", p.Key)
	assert.Equal(t, date(2020, 12, 28), p.Start)
	assert.Equal(t, date(2021, 1, 3), p.End)

	// 2024-12-30 is a Monday: ISO week 1 of 2025.
	p = PeriodOf(date(2024, 12, 30), domain.GranWeekly)
	assert.Equal(t, "2025-W01", p.Key)
	assert.Equal(t, date(2024, 12, 30), p.Start)
}

func TestPeriodOf_Monthly(t *testing.T) {
	p := PeriodOf(date(2026, 2, 10), domain.GranMonthly)
	assert.Equal(t, "2026-02", p.Key)
	assert.Equal(t, date(2026, 2, 1), p.Start)
	assert.Equal(t, date(2026, 2, 28), p.End)
}

func TestCustomPeriod_SwapsReversedBounds(t *testing.T) {
	p := CustomPeriod(date(2026, 3, 10), date(2026, 3, 1))
	assert.Equal(t, date(2026, 3, 1), p.Start)
	assert.Equal(t, date(2026, 3, 10), p.End)
	assert.Equal(t, 10, p.Days())
}

func TestPreviousPeriod(t *testing.T) {
	daily := PeriodOf(date(2026, 3, 1), domain.GranDaily)
	assert.Equal(t, "2026-02-28", PreviousPeriod(daily, domain.GranDaily).Key)

	weekly := PeriodOf(date(2024, 12, 30), domain.GranWeekly) // 2025-W01
	assert.Equal(t, "2024-W52", PreviousPeriod(weekly, domain.GranWeekly).Key)

	monthly := PeriodOf(date(2026, 3, 11), domain.GranMonthly)
	assert.Equal(t, "2026-02", PreviousPeriod(monthly, domain.GranMonthly).Key)

	custom := CustomPeriod(date(2026, 3, 1), date(2026, 3, 10))
	prev := PreviousPeriod(custom, domain.GranCustom)
	assert.Equal(t, date(2026, 2, 19), prev.Start)
	assert.Equal(t, date(2026, 2, 28), prev.End)
}

func TestNextPeriod_AdjacentAndNonOverlapping(t *testing.T) {
	for _, g := range []domain.Granularity{domain.GranDaily, domain.GranWeekly, domain.GranMonthly} {
		p := PeriodOf(date(2026, 3, 11), g)
		next := NextPeriod(p, g)
		assert.Equal(t, p.End.AddDate(0, 0, 1), next.Start, "granularity %s", g)
	}
}

func TestPeriodsFrom(t *testing.T) {
	periods := PeriodsFrom(date(2026, 3, 11), domain.GranWeekly, 3)
	require.Len(t, periods, 3)
	assert.Equal(t, "2026-W11", periods[0].Key)
	assert.Equal(t, "2026-W12", periods[1].Key)
	assert.Equal(t, "2026-W13", periods[2].Key)
}

func TestPeriodFromKey_RoundTrip(t *testing.T) {
	keys := []string{"2026-03-11", "2025-W01", "2020-W53", "2026-02", "2026-03-01..2026-03-10"}
	for _, key := range keys {
		p, err := PeriodFromKey(key)
		require.NoError(t, err, "key %q", key)
		assert.Equal(t, key, p.Key)
	}

	_, err := PeriodFromKey("garbage")
	assert.Error(t, err)
	_, err = PeriodFromKey("2026-W99")
	assert.Error(t, err)
}

// Bounds invariant: every date falls inside its own period, at every
// granularity, including across year boundaries.
func TestPeriodOf_BoundsProperty(t *testing.T) {
	grans := []domain.Granularity{domain.GranDaily, domain.GranWeekly, domain.GranMonthly}
	for d := date(2024, 12, 1); d.Before(date(2025, 2, 15)); d = d.AddDate(0, 0, 1) {
		for _, g := range grans {
			p := PeriodOf(d, g)
			assert.False(t, p.Start.After(p.End), "start after end for %s at %s", g, d)
			assert.True(t, p.Contains(d), "period %q does not contain %s", p.Key, d)

			round, err := PeriodFromKey(p.Key)
			require.NoError(t, err)
			assert.Equal(t, p.Start, round.Start, "key %q", p.Key)
			assert.Equal(t, p.End, round.End, "key %q", p.Key)
		}
	}
}
