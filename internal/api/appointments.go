package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gnaneshwari22/hospital-scheduling/internal/scheduling"
)

func bookAppointmentHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		date, err := time.Parse(scheduling.DateLayout, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_date", "date must be formatted YYYY-MM-DD")
			return
		}
		if req.TimeSlot == "" {
			writeError(w, http.StatusBadRequest, "invalid_time_slot", "time_slot is required")
			return
		}

		appt, err := svc.Book(req.PatientID, req.DoctorID, date, req.TimeSlot)
		if err != nil {
			handleBookError(w, err)
			return
		}

		if req.Symptoms != "" {
			if err := svc.SetSymptoms(appt.ID, req.Symptoms); err == nil {
				appt, _ = svc.Get(appt.ID)
			}
		}

		writeJSON(w, http.StatusCreated, appt)
	}
}

func listAppointmentsHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if patientID := q.Get("patient_id"); patientID != "" {
			writeJSON(w, http.StatusOK, svc.ByPatient(patientID))
			return
		}
		if doctorID := q.Get("doctor_id"); doctorID != "" {
			writeJSON(w, http.StatusOK, svc.ByDoctor(doctorID))
			return
		}
		if dateStr := q.Get("date"); dateStr != "" {
			date, err := time.Parse(scheduling.DateLayout, dateStr)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_date", "date must be formatted YYYY-MM-DD")
				return
			}
			writeJSON(w, http.StatusOK, svc.OnDate(date))
			return
		}
		if status := q.Get("status"); status != "" {
			writeJSON(w, http.StatusOK, svc.ByStatus(scheduling.Status(status)))
			return
		}

		writeJSON(w, http.StatusOK, svc.All())
	}
}

func getAppointmentHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appt, err := svc.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "appointment_not_found", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, appt)
	}
}

// cancelAppointmentHandler always answers OK: cancellation is an idempotent
// no-op on unknown or already-terminal ids.
func cancelAppointmentHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Cancel(chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, "appointment cancelled")
	}
}

func completeAppointmentHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompleteAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		svc.Complete(chi.URLParam(r, "id"), req.Diagnosis, req.Prescription)
		writeJSON(w, http.StatusOK, "appointment completed")
	}
}

func availabilityHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		doctorID := q.Get("doctor_id")
		dateStr := q.Get("date")
		timeSlot := q.Get("time_slot")

		if doctorID == "" || dateStr == "" || timeSlot == "" {
			writeError(w, http.StatusBadRequest, "missing_params", "doctor_id, date and time_slot are required")
			return
		}
		date, err := time.Parse(scheduling.DateLayout, dateStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_date", "date must be formatted YYYY-MM-DD")
			return
		}

		writeJSON(w, http.StatusOK, AvailabilityResponse{
			DoctorID:  doctorID,
			Date:      dateStr,
			TimeSlot:  timeSlot,
			Available: svc.SlotAvailable(doctorID, date, timeSlot),
		})
	}
}

func handleBookError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scheduling.ErrUnknownPatient):
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
	case errors.Is(err, scheduling.ErrUnknownDoctor):
		writeError(w, http.StatusNotFound, "doctor_not_found", err.Error())
	case errors.Is(err, scheduling.ErrSlotTaken):
		writeError(w, http.StatusConflict, "slot_taken", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
