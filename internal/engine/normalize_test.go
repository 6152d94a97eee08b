package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeZone(t *testing.T) {
	tests := []struct {
		raw    string
		expect string
	}{
		{"", ""},
		{"   ", ""},
		{"zone 3", "ZONE 3"},
		{"  Zone   3  ", "ZONE 3"},
		{"beta\t wing", "BETA WING"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expect, NormalizeZone(tt.raw), "raw %q", tt.raw)
	}
}

func TestExtractZoneNumber(t *testing.T) {
	tests := []struct {
		raw    string
		num    string
		found  bool
	}{
		{"Zone-3", "3", true},
		{"zone 3", "3", true},
		{"ZONE_12", "12", true},
		{"Zone 07", "7", true},
		{"3", "3", true},
		{"Z3", "3", true},              // trailing run
		{"Block 4 area 12", "12", true}, // trailing run wins over first run
		{"Sector 5 North", "5", true},  // first run fallback
		{"ALPHA", "", false},
		{"", "", false},
		{"  ", "", false},
	}
	for _, tt := range tests {
		num, found := ExtractZoneNumber(tt.raw)
		assert.Equal(t, tt.found, found, "raw %q", tt.raw)
		assert.Equal(t, tt.num, num, "raw %q", tt.raw)
	}
}

func TestNormalizeProjectCode(t *testing.T) {
	assert.Equal(t, "C-102", NormalizeProjectCode("  c-102 "))
	assert.Equal(t, "", NormalizeProjectCode("   "))
}

func TestNormalizeActivityName(t *testing.T) {
	assert.Equal(t, "excavation works", NormalizeActivityName("  Excavation Works "))
	assert.Equal(t, "", NormalizeActivityName(""))
}
