package scheduling

import (
	"errors"
	"strings"
	"time"

	"github.com/gnaneshwari22/hospital-scheduling/internal/store"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// Repository is the appointment table. Queries are pure filters over a
// snapshot; ordering is whatever the snapshot yields. Cross-entity
// consistency with the slot index is the core's job, not the repository's.
type Repository struct {
	appointments *store.Store[*Appointment]
}

func NewRepository() *Repository {
	return &Repository{
		appointments: store.New(func(a *Appointment) string { return a.ID }),
	}
}

func (r *Repository) Add(a *Appointment) error {
	return r.appointments.Put(a)
}

func (r *Repository) Get(id string) (*Appointment, error) {
	a, err := r.appointments.Get(id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}
	return a, nil
}

func (r *Repository) Update(a *Appointment) error {
	if err := r.appointments.Update(a); err != nil {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *Repository) All() []*Appointment {
	return r.appointments.All()
}

func (r *Repository) ByPatient(patientID string) []*Appointment {
	return store.Filter(r.appointments, func(a *Appointment) bool {
		return a.PatientID == patientID
	})
}

func (r *Repository) ByDoctor(doctorID string) []*Appointment {
	return store.Filter(r.appointments, func(a *Appointment) bool {
		return a.DoctorID == doctorID
	})
}

func (r *Repository) OnDate(date time.Time) []*Appointment {
	day := date.Format(DateLayout)
	return store.Filter(r.appointments, func(a *Appointment) bool {
		return a.Date.Format(DateLayout) == day
	})
}

func (r *Repository) ByStatus(status Status) []*Appointment {
	return store.Filter(r.appointments, func(a *Appointment) bool {
		return strings.EqualFold(string(a.Status), string(status))
	})
}

func (r *Repository) Total() int {
	return r.appointments.Len()
}
