package api

import (
	"net/http"

	"github.com/gnaneshwari22/hospital-scheduling/internal/doctor"
	"github.com/gnaneshwari22/hospital-scheduling/internal/patient"
	"github.com/gnaneshwari22/hospital-scheduling/internal/scheduling"
)

type HealthHandler struct {
	patients   *patient.Service
	doctors    *doctor.Service
	scheduling *scheduling.Service
	env        string
	version    string
}

func NewHealthHandler(patients *patient.Service, doctors *doctor.Service, sched *scheduling.Service, env, version string) *HealthHandler {
	return &HealthHandler{
		patients:   patients,
		doctors:    doctors,
		scheduling: sched,
		env:        env,
		version:    version,
	}
}

type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Env     string `json:"env,omitempty"`
}

type ReadinessResponse struct {
	Status     string         `json:"status"`
	Version    string         `json:"version,omitempty"`
	Env        string         `json:"env,omitempty"`
	Registries map[string]int `json:"registries"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LivenessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
	})
}

// Readiness has no external dependencies to probe; it reports registry sizes
// so operators can see the process is serving real state.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ReadinessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
		Registries: map[string]int{
			"patients":     h.patients.Total(),
			"doctors":      h.doctors.Total(),
			"appointments": h.scheduling.Total(),
		},
	})
}
