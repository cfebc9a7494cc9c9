package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gnaneshwari22/hospital-scheduling/internal/doctor"
)

func registerDoctorHandler(svc *doctor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterDoctorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "invalid_name", "name is required")
			return
		}

		d, err := svc.Register(req.Name, req.Specialization, req.Department,
			req.ContactNumber, req.Email, req.ExperienceYears, req.ConsultationFee)
		if err != nil {
			handleDoctorError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, d)
	}
}

func listDoctorsHandler(svc *doctor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if spec := r.URL.Query().Get("specialization"); spec != "" {
			writeJSON(w, http.StatusOK, svc.BySpecialization(spec))
			return
		}
		if dept := r.URL.Query().Get("department"); dept != "" {
			writeJSON(w, http.StatusOK, svc.InDepartment(dept))
			return
		}
		writeJSON(w, http.StatusOK, svc.All())
	}
}

func getDoctorHandler(svc *doctor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Get(chi.URLParam(r, "id"))
		if err != nil {
			handleDoctorError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

func doctorStatsHandler(svc *doctor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		byDept := make(map[string]int)
		for dept, docs := range svc.ByDepartment() {
			byDept[dept] = len(docs)
		}

		stats := DoctorStatsResponse{
			Total:              svc.Total(),
			ByDepartment:       byDept,
			AvgFeeByDepartment: svc.AverageFeeByDepartment(),
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func handleDoctorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, doctor.ErrNotFound):
		writeError(w, http.StatusNotFound, "doctor_not_found", err.Error())
	case errors.Is(err, doctor.ErrDuplicate):
		writeError(w, http.StatusConflict, "doctor_exists", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
