package importer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/sitepace/internal/domain"
	"github.com/google/uuid"
)

// ConvertedSnapshot holds domain objects ready for persistence plus the
// warnings produced while repairing or dropping loose records.
type ConvertedSnapshot struct {
	Projects  []*domain.Project
	WorkItems []*domain.WorkItem
	Entries   []*domain.ProgressEntry
	Warnings  []string
}

// Convert transforms a validated snapshot into domain objects. Call
// ValidateSnapshot first; Convert assumes the structural checks passed.
// Soft defects degrade instead of failing the import: an unparsable
// quantity becomes 0, an entry with an unknown input type or date is
// dropped, and each repair is recorded as a warning.
func Convert(snapshot *SnapshotImport) *ConvertedSnapshot {
	now := time.Now().UTC()
	out := &ConvertedSnapshot{}

	for _, p := range snapshot.Projects {
		status := domain.ProjectStatus(p.Status)
		if p.Status == "" {
			status = domain.ProjectOnGoing
		}
		amount, ok := asFloat(p.ContractAmount)
		if !ok && p.ContractAmount != nil {
			out.warnf("project %s: unparsable contract_amount %v, using 0", p.Code, p.ContractAmount)
		}
		out.Projects = append(out.Projects, &domain.Project{
			ID:             uuid.New().String(),
			Code:           strings.TrimSpace(p.Code),
			SubCode:        strings.TrimSpace(p.SubCode),
			Name:           p.Name,
			Status:         status,
			Division:       p.Division,
			Currency:       p.Currency,
			ContractAmount: amount,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	for i, w := range snapshot.WorkItems {
		item := &domain.WorkItem{
			ID:                uuid.New().String(),
			ProjectCode:       strings.TrimSpace(w.ProjectCode),
			ProjectFullCode:   strings.TrimSpace(w.ProjectFullCode),
			Description:       domain.CoalesceStr(w.Description, w.Activity),
			Zone:              coalesceZone(w.Zone, w.ZoneNo, w.Location),
			Division:          w.Division,
			Unit:              w.Unit,
			Completed:         domain.BoolFromPtrWithDefault(false, w.Completed),
			Delayed:           domain.BoolFromPtrWithDefault(false, w.Delayed),
			Deadline:          parseOptionalDate(w.Deadline),
			PlannedStart:      parseOptionalDate(w.PlannedStart),
			ActualStart:       parseOptionalDate(w.ActualStart),
			PlannedCompletion: parseOptionalDate(w.PlannedCompletion),
			ActualCompletion:  parseOptionalDate(w.ActualCompletion),
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		item.TotalUnits = out.floatField(i, item.Description, "total_units", w.TotalUnits)
		item.PlannedUnits = out.floatField(i, item.Description, "planned_units", w.PlannedUnits)
		item.ActualUnits = out.floatField(i, item.Description, "actual_units", w.ActualUnits)
		item.Rate = out.floatField(i, item.Description, "rate", w.Rate)
		item.TotalValue = out.floatField(i, item.Description, "total_value", w.TotalValue)
		out.WorkItems = append(out.WorkItems, item)
	}

	for i, e := range snapshot.Entries {
		activity := domain.CoalesceStr(e.Activity, e.Description)

		rawType := domain.CoalesceStr(e.InputType, e.Type)
		inputType, err := domain.ParseInputType(rawType)
		if err != nil {
			out.warnf("progress_entries[%d] (%s): dropped: %v", i, activity, err)
			continue
		}

		date, ok := asDate(firstNonNil(e.Date, e.EntryDate))
		if !ok {
			out.warnf("progress_entries[%d] (%s): dropped: unparsable date %v", i, activity, firstNonNil(e.Date, e.EntryDate))
			continue
		}

		quantity, ok := asFloat(firstNonNil(e.Quantity, e.Qty, e.Value))
		if !ok {
			out.warnf("progress_entries[%d] (%s): unparsable quantity, using 0", i, activity)
		}

		out.Entries = append(out.Entries, &domain.ProgressEntry{
			ID:                  uuid.New().String(),
			ProjectCode:         strings.TrimSpace(e.ProjectCode),
			ProjectFullCode:     strings.TrimSpace(e.ProjectFullCode),
			ActivityDescription: activity,
			Zone:                coalesceZone(e.Zone, e.ZoneNo, e.Location),
			InputType:           string(inputType),
			Date:                date,
			Quantity:            quantity,
			CreatedAt:           now,
		})
	}

	return out
}

func (c *ConvertedSnapshot) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func (c *ConvertedSnapshot) floatField(i int, description, field string, raw any) float64 {
	v, ok := asFloat(raw)
	if !ok && raw != nil {
		c.warnf("work_items[%d] (%s): unparsable %s %v, using 0", i, description, field, raw)
	}
	return v
}

// asFloat accepts the numeric shapes JSON decoding can produce: floats,
// json.Number, and numeric strings with optional thousands separators.
func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

var entryDateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

func asDate(raw any) (time.Time, bool) {
	s, ok := raw.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func coalesceZone(zone string, zoneNo any, location string) string {
	if zone != "" {
		return zone
	}
	switch v := zoneNo.(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}
	return location
}

func parseOptionalDate(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil
	}
	return &t
}

func firstNonNil(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
