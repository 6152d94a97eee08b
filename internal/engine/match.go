package engine

import (
	"strings"

	"github.com/alexanderramin/sitepace/internal/domain"
)

// Matches decides whether a progress entry belongs to a work item scoped to
// targetZone. Three tiers, AND-ed, short-circuiting on first failure:
// project code, activity description, zone. Project and activity resolve
// doubt strictly (never cross-contaminate unrelated work); zone resolves
// one-sided missing information permissively (progress that merely lacks
// zone metadata still counts against a zone-agnostic item).
func Matches(e domain.ProgressEntry, w domain.WorkItem, targetZone string) bool {
	if !projectMatches(e, w) {
		return false
	}
	if !activityMatches(e.ActivityDescription, w.Description) {
		return false
	}
	return zoneMatches(e.Zone, targetZone)
}

// MatchesItem matches against the work item's own zone label.
func MatchesItem(e domain.ProgressEntry, w domain.WorkItem) bool {
	return Matches(e, w, w.Zone)
}

// MatchesCombined is the zone-agnostic variant used to merge multiple zones
// of the same activity. Zone is skipped entirely, and the activity tier
// requires exact equality: substring tolerance here would accidentally merge
// different activities, not zones of one activity.
func MatchesCombined(e domain.ProgressEntry, w domain.WorkItem) bool {
	if !projectMatches(e, w) {
		return false
	}
	return NormalizeActivityName(e.ActivityDescription) != "" &&
		NormalizeActivityName(e.ActivityDescription) == NormalizeActivityName(w.Description)
}

// projectMatches applies the strict tier when the work item carries a
// sub-coded full code (a separator inside the full code beyond the base
// code): the entry's full code must equal it exactly. Without a sub-code,
// code and full code are interchangeable on both sides.
func projectMatches(e domain.ProgressEntry, w domain.WorkItem) bool {
	itemCode := NormalizeProjectCode(w.ProjectCode)
	itemFull := NormalizeProjectCode(w.ProjectFullCode)
	entryCode := NormalizeProjectCode(e.ProjectCode)
	entryFull := NormalizeProjectCode(e.ProjectFullCode)

	if hasSubCode(itemCode, itemFull) {
		return entryFull == itemFull
	}

	for _, item := range []string{itemCode, itemFull} {
		if item == "" {
			continue
		}
		if item == entryCode || item == entryFull {
			return true
		}
	}
	return false
}

// hasSubCode reports whether full extends code with a separated suffix.
func hasSubCode(code, full string) bool {
	if full == "" || full == code {
		return false
	}
	return strings.Contains(full, "-") || strings.Contains(full, "_")
}

// activityMatches tolerates truncated or expanded free text: equality, or
// one side containing the other. Empty descriptions never match anything.
func activityMatches(a, b string) bool {
	na, nb := NormalizeActivityName(a), NormalizeActivityName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// zoneMatches applies the zone tier. An empty target zone accepts any entry
// zone. A non-empty target hard-rejects entries with no zone value. When
// both sides extract a numeric zone the numbers must agree; when extraction
// fails on either side, fall back to exact normalized-text equality.
func zoneMatches(entryZone, targetZone string) bool {
	target := NormalizeZone(targetZone)
	if target == "" {
		return true
	}
	entry := NormalizeZone(entryZone)
	if entry == "" {
		return false
	}

	entryNum, entryOK := ExtractZoneNumber(entry)
	targetNum, targetOK := ExtractZoneNumber(target)
	if entryOK && targetOK {
		return entryNum == targetNum
	}
	return entry == target
}

// MatchedEntries filters entries down to those belonging to the work item,
// preserving input order.
func MatchedEntries(entries []domain.ProgressEntry, w domain.WorkItem, combined bool) []domain.ProgressEntry {
	var out []domain.ProgressEntry
	for _, e := range entries {
		if combined {
			if MatchesCombined(e, w) {
				out = append(out, e)
			}
			continue
		}
		if MatchesItem(e, w) {
			out = append(out, e)
		}
	}
	return out
}
