package scheduling

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gnaneshwari22/hospital-scheduling/internal/ident"
)

var (
	ErrUnknownPatient = errors.New("patient not found")
	ErrUnknownDoctor  = errors.New("doctor not found")
	ErrSlotTaken      = errors.New("time slot already booked for this doctor")
)

// PatientDirectory is the existence-check contract the core needs from the
// patient registry.
type PatientDirectory interface {
	Exists(id string) bool
}

// DoctorDirectory is the same contract for doctors.
type DoctorDirectory interface {
	Exists(id string) bool
}

// Service is the scheduling core. All mutating sequences run under mu, so
// the existence-check -> availability-check -> mutate path in Book is atomic
// with respect to every other Book/Cancel/Complete call. The lock is held
// only for in-memory work, never across I/O.
type Service struct {
	mu       sync.Mutex
	repo     *Repository
	index    *SlotIndex
	patients PatientDirectory
	doctors  DoctorDirectory
	logger   *zap.Logger
}

func NewService(repo *Repository, index *SlotIndex, patients PatientDirectory, doctors DoctorDirectory, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		index:    index,
		patients: patients,
		doctors:  doctors,
		logger:   logger,
	}
}

// Book reserves (doctorID, date, timeSlot) for a patient. Preconditions are
// checked in order: patient exists, doctor exists, slot free. On any failure
// no state changes; on success the slot index entry and the appointment are
// created together under the lock, so no caller observes one without the
// other.
//
// The time-slot string is not validated against the doctor's advertised
// vocabulary; any label books.
func (s *Service) Book(patientID, doctorID string, date time.Time, timeSlot string) (*Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.patients.Exists(patientID) {
		return nil, ErrUnknownPatient
	}
	if !s.doctors.Exists(doctorID) {
		return nil, ErrUnknownDoctor
	}
	if !s.index.Available(doctorID, date, timeSlot) {
		s.logger.Info("booking conflict",
			zap.String("doctor_id", doctorID),
			zap.String("date", date.Format(DateLayout)),
			zap.String("time_slot", timeSlot),
		)
		return nil, ErrSlotTaken
	}

	appt := &Appointment{
		ID:        ident.New(ident.AppointmentPrefix),
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		TimeSlot:  timeSlot,
		Status:    StatusScheduled,
		CreatedAt: time.Now(),
	}

	s.index.Occupy(doctorID, date, timeSlot)
	if err := s.repo.Add(appt); err != nil {
		// Fresh random id collided or the table rejected it; back the index
		// entry out so no partial mutation is visible.
		s.index.Release(doctorID, date, timeSlot)
		return nil, fmt.Errorf("store appointment: %w", err)
	}

	s.logger.Info("appointment booked",
		zap.String("appointment_id", appt.ID),
		zap.String("patient_id", patientID),
		zap.String("doctor_id", doctorID),
		zap.String("date", date.Format(DateLayout)),
		zap.String("time_slot", timeSlot),
	)

	return appt, nil
}

// Cancel moves a SCHEDULED appointment to CANCELLED and frees its slot for
// rebooking. Unknown ids and appointments already in a terminal state are
// silently skipped; cancellation is idempotent.
func (s *Service) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, err := s.repo.Get(id)
	if err != nil || appt.Status.Terminal() {
		return
	}

	// Replace rather than mutate: readers may still hold the old snapshot.
	upd := *appt
	upd.Status = StatusCancelled
	if err := s.repo.Update(&upd); err != nil {
		s.logger.Error("cancel update failed", zap.String("appointment_id", id), zap.Error(err))
		return
	}
	s.index.Release(appt.DoctorID, appt.Date, appt.TimeSlot)

	s.logger.Info("appointment cancelled", zap.String("appointment_id", id))
}

// Complete moves a SCHEDULED appointment to COMPLETED, recording diagnosis
// and prescription. The slot index entry is kept: a completed appointment
// used its slot and the slot is not rebookable. Same no-op leniency as
// Cancel.
func (s *Service) Complete(id, diagnosis, prescription string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, err := s.repo.Get(id)
	if err != nil || appt.Status.Terminal() {
		return
	}

	upd := *appt
	upd.Status = StatusCompleted
	upd.Diagnosis = diagnosis
	upd.Prescription = prescription
	if err := s.repo.Update(&upd); err != nil {
		s.logger.Error("complete update failed", zap.String("appointment_id", id), zap.Error(err))
		return
	}

	s.logger.Info("appointment completed", zap.String("appointment_id", id))
}

// SlotAvailable is an advisory read. A true answer can go stale before the
// caller acts on it; only Book reserves.
func (s *Service) SlotAvailable(doctorID string, date time.Time, timeSlot string) bool {
	return s.index.Available(doctorID, date, timeSlot)
}

func (s *Service) Get(id string) (*Appointment, error) {
	return s.repo.Get(id)
}

// SetSymptoms records the symptoms text on an existing appointment.
func (s *Service) SetSymptoms(id, symptoms string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, err := s.repo.Get(id)
	if err != nil {
		return err
	}
	upd := *appt
	upd.Symptoms = symptoms
	return s.repo.Update(&upd)
}

func (s *Service) All() []*Appointment {
	return s.repo.All()
}

func (s *Service) ByPatient(patientID string) []*Appointment {
	return s.repo.ByPatient(patientID)
}

func (s *Service) ByDoctor(doctorID string) []*Appointment {
	return s.repo.ByDoctor(doctorID)
}

func (s *Service) OnDate(date time.Time) []*Appointment {
	return s.repo.OnDate(date)
}

func (s *Service) ByStatus(status Status) []*Appointment {
	return s.repo.ByStatus(status)
}

func (s *Service) Total() int {
	return s.repo.Total()
}
