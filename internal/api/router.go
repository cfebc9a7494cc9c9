package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gnaneshwari22/hospital-scheduling/internal/doctor"
	"github.com/gnaneshwari22/hospital-scheduling/internal/patient"
	"github.com/gnaneshwari22/hospital-scheduling/internal/scheduling"
)

type RouterConfig struct {
	Patients   *patient.Service
	Doctors    *doctor.Service
	Scheduling *scheduling.Service
	Logger     *zap.Logger
	Env        string
	Version    string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(cfg.Logger))

	// Health endpoints
	health := NewHealthHandler(cfg.Patients, cfg.Doctors, cfg.Scheduling, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	// Patient registry
	r.Post("/patients", registerPatientHandler(cfg.Patients))
	r.Get("/patients", listPatientsHandler(cfg.Patients))
	r.Get("/patients/critical", criticalPatientsHandler(cfg.Patients))
	r.Get("/patients/stats", patientStatsHandler(cfg.Patients))
	r.Get("/patients/{id}", getPatientHandler(cfg.Patients))
	r.Post("/patients/{id}/history", addMedicalRecordHandler(cfg.Patients))
	r.Get("/patients/{id}/history", medicalHistoryHandler(cfg.Patients))
	r.Post("/patients/{id}/critical", markCriticalHandler(cfg.Patients))

	// Doctor registry
	r.Post("/doctors", registerDoctorHandler(cfg.Doctors))
	r.Get("/doctors", listDoctorsHandler(cfg.Doctors))
	r.Get("/doctors/stats", doctorStatsHandler(cfg.Doctors))
	r.Get("/doctors/{id}", getDoctorHandler(cfg.Doctors))

	// Scheduling
	r.Post("/appointments", bookAppointmentHandler(cfg.Scheduling))
	r.Get("/appointments", listAppointmentsHandler(cfg.Scheduling))
	r.Get("/appointments/availability", availabilityHandler(cfg.Scheduling))
	r.Get("/appointments/{id}", getAppointmentHandler(cfg.Scheduling))
	r.Post("/appointments/{id}/cancel", cancelAppointmentHandler(cfg.Scheduling))
	r.Post("/appointments/{id}/complete", completeAppointmentHandler(cfg.Scheduling))

	// Stateless collaborators
	r.Post("/billing", calculateBillHandler())
	r.Post("/reports", generateReportHandler(cfg.Patients))

	return r
}
