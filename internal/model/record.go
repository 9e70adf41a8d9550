package model

import (
	"time"

	"github.com/google/uuid"
)

// Risk levels assigned to an episode. Imported rows always start at RiskLow;
// the backend recomputes the real level on ingestion.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Episode status values.
const (
	StatusActive     = "active"
	StatusDischarged = "discharged"
)

// Case-management status values.
const (
	CaseOpen   = "open"
	CaseClosed = "closed"
)

// PatientRecord is the normalized draft of one clinical episode parsed from a
// roster row. It carries no identifier until it is added to a repository.
// Optional columns are pointers; nil means the cell was absent or blank.
type PatientRecord struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	AdmissionDate string `json:"admission_date"` // calendar date, YYYY-MM-DD
	Service       string `json:"service"`
	Diagnosis     string `json:"diagnosis"`

	RUT                  *string  `json:"rut,omitempty"`
	GRDCode              *string  `json:"grd_code,omitempty"`
	ExpectedStayDays     *float64 `json:"expected_stay_days,omitempty"`
	ResponsibleClinician *string  `json:"responsible_clinician,omitempty"`
	Bed                  *string  `json:"bed,omitempty"`
	Insurance            *string  `json:"insurance,omitempty"`
	Contact              *string  `json:"contact,omitempty"`

	// Derived at import time. Provisional: the backend owns the real values.
	DaysInStay    int    `json:"days_in_stay"`
	RiskLevel     string `json:"risk_level"`
	Status        string `json:"status"`
	CaseStatus    string `json:"case_status"`
	SocialRisk    bool   `json:"social_risk"`
	FinancialRisk bool   `json:"financial_risk"`
}

// Episode is a PatientRecord that has been admitted into a repository.
type Episode struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	PatientRecord
}
