package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wiNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestContractRate_TotalValueOverUnits(t *testing.T) {
	w := WorkItem{TotalValue: 5000, TotalUnits: 100, Rate: 99}
	assert.InDelta(t, 50.0, w.ContractRate(), 1e-9)
}

func TestContractRate_FallsBackToStoredRate(t *testing.T) {
	w := WorkItem{TotalUnits: 100, Rate: 12.5}
	assert.InDelta(t, 12.5, w.ContractRate(), 1e-9)
}

func TestContractRate_DegradesToZero(t *testing.T) {
	w := WorkItem{TotalUnits: 100}
	assert.Zero(t, w.ContractRate())
}

func TestProgressPercent_ZeroTotalUnits(t *testing.T) {
	w := WorkItem{TotalUnits: 0, ActualUnits: 10}
	assert.Zero(t, w.ProgressPercent())
}

func TestIsComplete_Signals(t *testing.T) {
	assert.True(t, (&WorkItem{Completed: true}).IsComplete(wiNow))
	assert.True(t, (&WorkItem{TotalUnits: 10, ActualUnits: 10}).IsComplete(wiNow))
	assert.True(t, (&WorkItem{ActualCompletion: datePtr(2026, 3, 1)}).IsComplete(wiNow))
	assert.False(t, (&WorkItem{ActualCompletion: datePtr(2026, 4, 1)}).IsComplete(wiNow))
	assert.False(t, (&WorkItem{TotalUnits: 10, ActualUnits: 5}).IsComplete(wiNow))
}

func TestIsDelayed_CompletionWinsOverDelaySignals(t *testing.T) {
	// The source system never defined precedence between a completed flag
	// and a passed deadline; here completion always wins.
	w := WorkItem{
		Completed: true,
		Delayed:   true,
		Deadline:  datePtr(2026, 1, 1),
	}
	assert.False(t, w.IsDelayed(wiNow))
}

func TestIsDelayed_AnySignalTriggers(t *testing.T) {
	flag := WorkItem{TotalUnits: 10, ActualUnits: 5, Delayed: true}
	assert.True(t, flag.IsDelayed(wiNow))

	deadline := WorkItem{TotalUnits: 10, ActualUnits: 5, Deadline: datePtr(2026, 1, 1)}
	assert.True(t, deadline.IsDelayed(wiNow))

	notStarted := WorkItem{TotalUnits: 10, PlannedStart: datePtr(2026, 2, 1)}
	assert.True(t, notStarted.IsDelayed(wiNow))

	started := WorkItem{TotalUnits: 10, ActualUnits: 2, PlannedStart: datePtr(2026, 2, 1)}
	assert.False(t, started.IsDelayed(wiNow))
}

func TestParseInputType_NormalizesWhitespaceAndCase(t *testing.T) {
	got, err := ParseInputType("Planned ")
	require.NoError(t, err)
	assert.Equal(t, InputPlanned, got)

	got, err = ParseInputType("  ACTUAL")
	require.NoError(t, err)
	assert.Equal(t, InputActual, got)
}

func TestParseInputType_RejectsUnknown(t *testing.T) {
	_, err := ParseInputType("forecast")
	assert.Error(t, err)
	_, err = ParseInputType("")
	assert.Error(t, err)
}
