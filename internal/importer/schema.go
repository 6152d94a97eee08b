package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SnapshotImport is the top-level JSON structure for a site-data snapshot:
// the project register, the bill of quantities, and the raw progress log.
// Field types are deliberately loose where exported spreadsheets disagree
// on spelling or typing; Convert reconciles the variants.
type SnapshotImport struct {
	Projects  []ProjectImport  `json:"projects"`
	WorkItems []WorkItemImport `json:"work_items"`
	Entries   []EntryImport    `json:"progress_entries"`
}

// ProjectImport defines one contract in the import file.
type ProjectImport struct {
	Code           string `json:"code"`
	SubCode        string `json:"sub_code,omitempty"`
	Name           string `json:"name"`
	Status         string `json:"status,omitempty"`
	Division       string `json:"division,omitempty"`
	Currency       string `json:"currency,omitempty"`
	ContractAmount any    `json:"contract_amount,omitempty"`
}

// WorkItemImport defines one bill-of-quantities line. Quantities and money
// arrive as numbers or numeric strings depending on the exporting tool, so
// they are typed as any and parsed during conversion.
type WorkItemImport struct {
	ProjectCode     string `json:"project_code"`
	ProjectFullCode string `json:"project_full_code,omitempty"`

	// Description and Activity are alternate spellings of the same field.
	Description string `json:"description,omitempty"`
	Activity    string `json:"activity,omitempty"`

	// Zone, ZoneNo and Location are alternate spellings of the same field.
	Zone     string `json:"zone,omitempty"`
	ZoneNo   any    `json:"zone_no,omitempty"`
	Location string `json:"location,omitempty"`

	Division string `json:"division,omitempty"`
	Unit     string `json:"unit,omitempty"`

	TotalUnits   any `json:"total_units,omitempty"`
	PlannedUnits any `json:"planned_units,omitempty"`
	ActualUnits  any `json:"actual_units,omitempty"`
	Rate         any `json:"rate,omitempty"`
	TotalValue   any `json:"total_value,omitempty"`

	Completed *bool `json:"completed,omitempty"`
	Delayed   *bool `json:"delayed,omitempty"`

	Deadline          *string `json:"deadline,omitempty"`
	PlannedStart      *string `json:"planned_start,omitempty"`
	ActualStart       *string `json:"actual_start,omitempty"`
	PlannedCompletion *string `json:"planned_completion,omitempty"`
	ActualCompletion  *string `json:"actual_completion,omitempty"`
}

// EntryImport defines one progress log row.
type EntryImport struct {
	ProjectCode     string `json:"project_code,omitempty"`
	ProjectFullCode string `json:"project_full_code,omitempty"`

	Activity    string `json:"activity,omitempty"`
	Description string `json:"description,omitempty"`

	Zone     string `json:"zone,omitempty"`
	ZoneNo   any    `json:"zone_no,omitempty"`
	Location string `json:"location,omitempty"`

	// InputType and Type are alternate spellings of the planned/actual
	// discriminator.
	InputType string `json:"input_type,omitempty"`
	Type      string `json:"type,omitempty"`

	Date      any `json:"date,omitempty"`
	EntryDate any `json:"entry_date,omitempty"`

	Quantity any `json:"quantity,omitempty"`
	Qty      any `json:"qty,omitempty"`
	Value    any `json:"value,omitempty"`
}

// LoadSnapshotFile reads and decodes a snapshot import file.
func LoadSnapshotFile(path string) (*SnapshotImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var snapshot SnapshotImport
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &snapshot, nil
}
