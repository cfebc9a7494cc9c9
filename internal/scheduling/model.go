package scheduling

import "time"

// DateLayout is the wire format for appointment dates. Appointments are
// booked against a calendar day, not an instant.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Appointment links one patient to one doctor on a calendar date and
// time-slot label. Status moves SCHEDULED -> CANCELLED or SCHEDULED ->
// COMPLETED and never leaves a terminal state.
type Appointment struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patient_id"`
	DoctorID     string    `json:"doctor_id"`
	Date         time.Time `json:"date"`
	TimeSlot     string    `json:"time_slot"`
	Status       Status    `json:"status"`
	Symptoms     string    `json:"symptoms,omitempty"`
	Diagnosis    string    `json:"diagnosis,omitempty"`
	Prescription string    `json:"prescription,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
