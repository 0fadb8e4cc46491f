package domain

import "time"

// Vaccination is an applied dose: which child received a dose from which
// lot, at which center, administered by whom and when. SchemeID links the
// dose to a calendar entry when the application followed the scheme.
type Vaccination struct {
	ID        string    `json:"vaccination_id"`
	ChildID   string    `json:"child_id"`
	LotID     string    `json:"lot_id"`
	SchemeID  string    `json:"scheme_id,omitempty"`
	CenterID  string    `json:"center_id"`
	AppliedBy string    `json:"applied_by"`
	AppliedAt time.Time `json:"applied_at"`
	Voided    bool      `json:"voided,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry is one row of a child's vaccination card, joining the applied
// dose with catalog names for display.
type HistoryEntry struct {
	VaccinationID string    `json:"vaccination_id"`
	VaccineName   string    `json:"vaccine_name"`
	DoseNumber    int       `json:"dose_number"`
	LotNumber     string    `json:"lot_number"`
	CenterName    string    `json:"center_name"`
	AppliedAt     time.Time `json:"applied_at"`
	AppliedBy     string    `json:"applied_by"`
}

// CoverageRow is one aggregate row of the coverage report: how many doses
// of a vaccine a center applied over a period.
type CoverageRow struct {
	CenterID     string `json:"center_id"`
	CenterName   string `json:"center_name"`
	VaccineID    string `json:"vaccine_id"`
	VaccineName  string `json:"vaccine_name"`
	DosesApplied int    `json:"doses_applied"`
}
