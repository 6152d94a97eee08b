package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullCode_WithSubCode(t *testing.T) {
	p := Project{Code: "C-102", SubCode: "A"}
	assert.Equal(t, "C-102-A", p.FullCode())
}

func TestFullCode_WithoutSubCode(t *testing.T) {
	p := Project{Code: "C-102"}
	assert.Equal(t, "C-102", p.FullCode())
}

func TestValidateCode(t *testing.T) {
	valid := []string{"C-102", "RWD_7", "P100", "A-1-B"}
	for _, code := range valid {
		p := Project{Code: code}
		assert.NoError(t, p.ValidateCode(), "code %q", code)
	}

	invalid := []string{"", "C--102", "-C102", "C 102", "C102-"}
	for _, code := range invalid {
		p := Project{Code: code}
		assert.Error(t, p.ValidateCode(), "code %q", code)
	}
}

func TestValidProjectStatuses(t *testing.T) {
	all := []ProjectStatus{
		ProjectUpcoming, ProjectSitePreparation, ProjectOnGoing,
		ProjectCompleted, ProjectOnHold, ProjectCancelled,
	}
	for _, status := range all {
		assert.True(t, ValidProjectStatuses[status], "status %q", status)
	}
	assert.False(t, ValidProjectStatuses[ProjectStatus("paused")])
	assert.False(t, ValidProjectStatuses[ProjectStatus("")])
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&Project{Status: ProjectOnGoing}).IsActive())
	assert.True(t, (&Project{Status: ProjectSitePreparation}).IsActive())
	assert.False(t, (&Project{Status: ProjectCompleted}).IsActive())
	assert.False(t, (&Project{Status: ProjectOnHold}).IsActive())
}
