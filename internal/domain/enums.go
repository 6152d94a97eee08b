package domain

import (
	"fmt"
	"strings"
)

type ProjectStatus string

const (
	ProjectUpcoming        ProjectStatus = "upcoming"
	ProjectSitePreparation ProjectStatus = "site_preparation"
	ProjectOnGoing         ProjectStatus = "on_going"
	ProjectCompleted       ProjectStatus = "completed"
	ProjectOnHold          ProjectStatus = "on_hold"
	ProjectCancelled       ProjectStatus = "cancelled"
)

// ValidProjectStatuses is the canonical set of accepted project statuses.
var ValidProjectStatuses = map[ProjectStatus]bool{
	ProjectUpcoming: true, ProjectSitePreparation: true, ProjectOnGoing: true,
	ProjectCompleted: true, ProjectOnHold: true, ProjectCancelled: true,
}

// InputType discriminates planned from actual progress entries.
type InputType string

const (
	InputPlanned InputType = "planned"
	InputActual  InputType = "actual"
)

// ParseInputType normalizes a raw input-type string (trim + case-fold) and
// returns an error for anything that is not exactly planned or actual.
// Entries with unrecognized input types are excluded from aggregation,
// never defaulted to a guessed type.
func ParseInputType(raw string) (InputType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "planned":
		return InputPlanned, nil
	case "actual":
		return InputActual, nil
	}
	return "", fmt.Errorf("unrecognized input type %q", raw)
}

// Granularity selects how report periods are bucketed.
type Granularity string

const (
	GranDaily   Granularity = "daily"
	GranWeekly  Granularity = "weekly"
	GranMonthly Granularity = "monthly"
	GranCustom  Granularity = "custom"
)

// ParseGranularity accepts the canonical granularity names plus their
// single-letter shorthands used by the CLI.
func ParseGranularity(raw string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "daily", "d":
		return GranDaily, nil
	case "weekly", "w":
		return GranWeekly, nil
	case "monthly", "m":
		return GranMonthly, nil
	case "custom", "c":
		return GranCustom, nil
	}
	return "", fmt.Errorf("unrecognized granularity %q", raw)
}

// ActivityState is the forecast classification of a work item.
type ActivityState string

const (
	StateCompleted         ActivityState = "completed"
	StateDelayedNotStarted ActivityState = "delayed_not_started"
	StateInProgress        ActivityState = "in_progress"
)
