package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gnaneshwari22/hospital-scheduling/internal/patient"
)

func registerPatientHandler(svc *patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "invalid_name", "name is required")
			return
		}

		p, err := svc.Register(req.Name, req.Age, req.Gender, req.BloodGroup, req.ContactNumber, req.Address)
		if err != nil {
			handlePatientError(w, err)
			return
		}

		if req.Critical {
			if err := svc.MarkCritical(p.ID, true); err != nil {
				handlePatientError(w, err)
				return
			}
			p, err = svc.Get(p.ID)
			if err != nil {
				handlePatientError(w, err)
				return
			}
		}

		writeJSON(w, http.StatusCreated, p)
	}
}

func listPatientsHandler(svc *patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.All())
	}
}

func getPatientHandler(svc *patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(chi.URLParam(r, "id"))
		if err != nil {
			handlePatientError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func criticalPatientsHandler(svc *patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Critical())
	}
}

func patientStatsHandler(svc *patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := PatientStatsResponse{
			Total:        svc.Total(),
			Critical:     len(svc.Critical()),
			ByBloodGroup: svc.CountByBloodGroup(),
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func addMedicalRecordHandler(svc *patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MedicalRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}
		if req.Record == "" {
			writeError(w, http.StatusBadRequest, "invalid_record", "record is required")
			return
		}

		if err := svc.AddMedicalRecord(chi.URLParam(r, "id"), req.Record); err != nil {
			handlePatientError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, "record added")
	}
}

func medicalHistoryHandler(svc *patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := svc.MedicalHistory(chi.URLParam(r, "id"))
		if err != nil {
			handlePatientError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, history)
	}
}

func markCriticalHandler(svc *patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MarkCriticalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		if err := svc.MarkCritical(chi.URLParam(r, "id"), req.Critical); err != nil {
			handlePatientError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, "critical flag updated")
	}
}

func handlePatientError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, patient.ErrNotFound):
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
	case errors.Is(err, patient.ErrDuplicate):
		writeError(w, http.StatusConflict, "patient_exists", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
