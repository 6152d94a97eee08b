package engine

import (
	"regexp"
	"strings"
)

// Field normalization for reconciliation. Codes and zones are normalized
// aggressively because they are typo-prone ("Zone-3" vs "zone 3"); activity
// descriptions stay literal apart from trim and case-folding, since they are
// the most collision-prone field and fuzzy stemming would invite false
// positives.

var (
	zoneTagPattern      = regexp.MustCompile(`(?i)zone\s*[-_]?\s*(\d+)`)
	trailingRunPattern  = regexp.MustCompile(`(\d+)\s*$`)
	firstRunPattern     = regexp.MustCompile(`\d+`)
	innerSpacePattern   = regexp.MustCompile(`\s+`)
)

// NormalizeZone trims, upper-cases, and collapses internal whitespace.
// Absent input normalizes to the empty string, never to a sentinel.
func NormalizeZone(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	return innerSpacePattern.ReplaceAllString(s, " ")
}

// ExtractZoneNumber pulls the numeric zone out of a free-text label, trying
// in order: an explicit "zone N" tag, a trailing digit run, the first digit
// run anywhere. Leading zeros are dropped so "07" and "7" compare equal.
// The second return is false when the label carries no number at all.
func ExtractZoneNumber(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	if m := zoneTagPattern.FindStringSubmatch(s); m != nil {
		return stripLeadingZeros(m[1]), true
	}
	if m := trailingRunPattern.FindStringSubmatch(s); m != nil {
		return stripLeadingZeros(m[1]), true
	}
	if m := firstRunPattern.FindString(s); m != "" {
		return stripLeadingZeros(m), true
	}
	return "", false
}

func stripLeadingZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// NormalizeProjectCode trims and upper-cases. No fuzzy handling.
func NormalizeProjectCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeActivityName trims and lower-cases. No fuzzy handling.
func NormalizeActivityName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
