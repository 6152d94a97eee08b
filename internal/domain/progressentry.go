package domain

import "time"

// ProgressEntry is one reported quantity (planned or actual) for a work item
// on a date. Entries are append-only and reference their work item loosely:
// by project code, activity description, and optional zone label. The
// reconciliation engine decides which work item each entry belongs to.
type ProgressEntry struct {
	ID              string
	ProjectCode     string
	ProjectFullCode string

	ActivityDescription string
	Zone                string

	// InputType is the raw discriminator as recorded. Use ParseInputType
	// before aggregating; entries that fail to parse contribute nothing.
	InputType string

	Date     time.Time
	Quantity float64

	CreatedAt time.Time
}

// IsActual reports whether the entry parses as an actual-typed record.
func (e *ProgressEntry) IsActual() bool {
	t, err := ParseInputType(e.InputType)
	return err == nil && t == InputActual
}

// IsPlanned reports whether the entry parses as a planned-typed record.
func (e *ProgressEntry) IsPlanned() bool {
	t, err := ParseInputType(e.InputType)
	return err == nil && t == InputPlanned
}
