// Package report builds medical reports. Construction is pure: no store, no
// scheduling interaction.
package report

import (
	"strings"
	"time"

	"github.com/gnaneshwari22/hospital-scheduling/internal/ident"
)

type Report struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	GeneratedBy string    `json:"generated_by"`
	GeneratedAt time.Time `json:"generated_at"`
}

// labels maps a requested report type to its display label. Unknown types
// fall back to a general report.
var labels = map[string]string{
	"BLOOD_TEST":   "Blood Test",
	"XRAY":         "X-Ray",
	"MRI":          "MRI Scan",
	"PRESCRIPTION": "Prescription",
	"GENERAL":      "General Report",
}

// New creates a report with a fresh RPT- id. reportType is matched
// case-insensitively.
func New(patientID, reportType, content, generatedBy string) *Report {
	label, ok := labels[strings.ToUpper(reportType)]
	if !ok {
		label = labels["GENERAL"]
	}

	return &Report{
		ID:          ident.New(ident.ReportPrefix),
		PatientID:   patientID,
		Type:        label,
		Content:     content,
		GeneratedBy: generatedBy,
		GeneratedAt: time.Now(),
	}
}
