package api

import (
	"encoding/json"
	"net/http"

	"github.com/gnaneshwari22/hospital-scheduling/internal/patient"
	"github.com/gnaneshwari22/hospital-scheduling/internal/report"
)

func generateReportHandler(patients *patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}
		if !patients.Exists(req.PatientID) {
			writeError(w, http.StatusNotFound, "patient_not_found", "no patient with that id")
			return
		}

		rep := report.New(req.PatientID, req.ReportType, req.Content, req.GeneratedBy)
		writeJSON(w, http.StatusCreated, rep)
	}
}
