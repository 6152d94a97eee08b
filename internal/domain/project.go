package domain

import (
	"fmt"
	"regexp"
	"time"
)

var projectCodePattern = regexp.MustCompile(`^[A-Za-z0-9]+(?:[-_][A-Za-z0-9]+)*$`)

// Project is a contract under execution. Work items and progress entries
// reference it by Code (or FullCode when a sub-contract exists), not by ID.
type Project struct {
	ID       string
	Code     string
	SubCode  string
	Name     string
	Status   ProjectStatus
	Division string

	Currency       string
	ContractAmount float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullCode returns Code joined with SubCode ("C-102-A" for code "C-102",
// sub-code "A"). Without a sub-code it is just the code.
func (p *Project) FullCode() string {
	if p.SubCode == "" {
		return p.Code
	}
	return p.Code + "-" + p.SubCode
}

// ValidateCode checks that Code is non-empty and uses only alphanumeric
// runs separated by single dashes or underscores (e.g. C-102, RWD_7).
func (p *Project) ValidateCode() error {
	if p.Code == "" {
		return fmt.Errorf("project code is required")
	}
	if !projectCodePattern.MatchString(p.Code) {
		return fmt.Errorf("project code %q must be alphanumeric runs separated by - or _ (e.g. C-102)", p.Code)
	}
	return nil
}

// IsActive reports whether the project is in a state that accrues progress.
func (p *Project) IsActive() bool {
	return p.Status == ProjectOnGoing || p.Status == ProjectSitePreparation
}
