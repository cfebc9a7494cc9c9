package scheduling

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnaneshwari22/hospital-scheduling/internal/doctor"
	"github.com/gnaneshwari22/hospital-scheduling/internal/patient"
)

type fixture struct {
	sched    *Service
	patients *patient.Service
	doctors  *doctor.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	patients := patient.NewService(patient.NewRepository())
	doctors := doctor.NewService(doctor.NewRepository())
	sched := NewService(NewRepository(), NewSlotIndex(), patients, doctors, nil)

	return &fixture{sched: sched, patients: patients, doctors: doctors}
}

func (f *fixture) patient(t *testing.T, name string) *patient.Patient {
	t.Helper()
	p, err := f.patients.Register(name, 30, "Male", "O+", "1234567890", "123 Main St")
	require.NoError(t, err)
	return p
}

func (f *fixture) doctor(t *testing.T, name string) *doctor.Doctor {
	t.Helper()
	d, err := f.doctors.Register(name, "Cardiology", "Cardiology", "9876543210", "doc@hospital.test", 10, 200)
	require.NoError(t, err)
	return d
}

func testDate(t *testing.T) time.Time {
	t.Helper()
	date, err := time.Parse(DateLayout, "2025-01-10")
	require.NoError(t, err)
	return date
}

func TestBook(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "John Doe")
	d := f.doctor(t, "Dr. Smith")
	date := testDate(t)

	appt, err := f.sched.Book(p.ID, d.ID, date, "09:00-10:00")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(appt.ID, "APT-"))
	assert.Equal(t, p.ID, appt.PatientID)
	assert.Equal(t, d.ID, appt.DoctorID)
	assert.Equal(t, StatusScheduled, appt.Status)
	assert.False(t, appt.CreatedAt.IsZero())
	assert.False(t, f.sched.SlotAvailable(d.ID, date, "09:00-10:00"))
}

func TestBookUnknownPatient(t *testing.T) {
	f := newFixture(t)
	d := f.doctor(t, "Dr. Smith")
	date := testDate(t)

	_, err := f.sched.Book("PAT-UNKNOWN", d.ID, date, "09:00-10:00")
	assert.ErrorIs(t, err, ErrUnknownPatient)

	// Failed booking leaves no trace
	assert.True(t, f.sched.SlotAvailable(d.ID, date, "09:00-10:00"))
	assert.Equal(t, 0, f.sched.Total())
}

func TestBookUnknownDoctor(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "John Doe")
	date := testDate(t)

	_, err := f.sched.Book(p.ID, "DOC-UNKNOWN", date, "09:00-10:00")
	assert.ErrorIs(t, err, ErrUnknownDoctor)
	assert.Equal(t, 0, f.sched.Total())
}

func TestBookSlotConflict(t *testing.T) {
	f := newFixture(t)
	p1 := f.patient(t, "John Doe")
	p2 := f.patient(t, "Jane Smith")
	d := f.doctor(t, "Dr. Smith")
	date := testDate(t)

	_, err := f.sched.Book(p1.ID, d.ID, date, "09:00-10:00")
	require.NoError(t, err)

	_, err = f.sched.Book(p2.ID, d.ID, date, "09:00-10:00")
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, f.sched.Total())
}

func TestBookDistinctSlotsDoNotConflict(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "John Doe")
	d1 := f.doctor(t, "Dr. Smith")
	d2 := f.doctor(t, "Dr. Jones")
	date := testDate(t)

	_, err := f.sched.Book(p.ID, d1.ID, date, "09:00-10:00")
	require.NoError(t, err)

	// Same doctor, different slot
	_, err = f.sched.Book(p.ID, d1.ID, date, "10:00-11:00")
	require.NoError(t, err)

	// Same slot, different doctor
	_, err = f.sched.Book(p.ID, d2.ID, date, "09:00-10:00")
	require.NoError(t, err)

	// Same doctor and slot, different date
	_, err = f.sched.Book(p.ID, d1.ID, date.AddDate(0, 0, 1), "09:00-10:00")
	require.NoError(t, err)

	assert.Equal(t, 4, f.sched.Total())
}

func TestConcurrentBookingSameSlot(t *testing.T) {
	f := newFixture(t)
	d := f.doctor(t, "Dr. Smith")
	date := testDate(t)

	const n = 32
	patientIDs := make([]string, n)
	for i := range patientIDs {
		patientIDs[i] = f.patient(t, "Patient").ID
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(pid string) {
			defer wg.Done()
			_, err := f.sched.Book(pid, d.ID, date, "09:00-10:00")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrSlotTaken):
				conflicts++
			}
		}(patientIDs[i])
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded, "exactly one booking should win the slot")
	assert.Equal(t, n-1, conflicts)
	assert.Equal(t, 1, f.sched.Total())
}

func TestCancelReleasesSlot(t *testing.T) {
	f := newFixture(t)
	p1 := f.patient(t, "John Doe")
	p2 := f.patient(t, "Jane Smith")
	d := f.doctor(t, "Dr. Smith")
	date := testDate(t)

	appt, err := f.sched.Book(p1.ID, d.ID, date, "09:00-10:00")
	require.NoError(t, err)
	require.False(t, f.sched.SlotAvailable(d.ID, date, "09:00-10:00"))

	f.sched.Cancel(appt.ID)

	got, err := f.sched.Get(appt.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
	assert.True(t, f.sched.SlotAvailable(d.ID, date, "09:00-10:00"))

	// The freed slot is rebookable by someone else
	rebooked, err := f.sched.Book(p2.ID, d.ID, date, "09:00-10:00")
	require.NoError(t, err)
	assert.Equal(t, p2.ID, rebooked.PatientID)
}

func TestCancelIdempotent(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "John Doe")
	d := f.doctor(t, "Dr. Smith")
	date := testDate(t)

	// Unknown id: silent no-op
	f.sched.Cancel("APT-UNKNOWN")

	appt, err := f.sched.Book(p.ID, d.ID, date, "09:00-10:00")
	require.NoError(t, err)

	f.sched.Cancel(appt.ID)
	f.sched.Cancel(appt.ID)

	got, err := f.sched.Get(appt.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
}

func TestCompleteRecordsOutcome(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "John Doe")
	d := f.doctor(t, "Dr. Smith")
	date := testDate(t)

	appt, err := f.sched.Book(p.ID, d.ID, date, "09:00-10:00")
	require.NoError(t, err)

	f.sched.Complete(appt.ID, "Flu", "Rest")

	got, err := f.sched.Get(appt.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "Flu", got.Diagnosis)
	assert.Equal(t, "Rest", got.Prescription)
}

func TestCompleteKeepsSlotOccupied(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "John Doe")
	d := f.doctor(t, "Dr. Smith")
	date := testDate(t)

	appt, err := f.sched.Book(p.ID, d.ID, date, "09:00-10:00")
	require.NoError(t, err)

	f.sched.Complete(appt.ID, "Flu", "Rest")

	assert.False(t, f.sched.SlotAvailable(d.ID, date, "09:00-10:00"))

	_, err = f.sched.Book(p.ID, d.ID, date, "09:00-10:00")
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestTerminalStatesAreClosed(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "John Doe")
	d := f.doctor(t, "Dr. Smith")
	date := testDate(t)

	// Cancel after complete must not change status or free the slot
	completed, err := f.sched.Book(p.ID, d.ID, date, "09:00-10:00")
	require.NoError(t, err)
	f.sched.Complete(completed.ID, "Flu", "Rest")
	f.sched.Cancel(completed.ID)

	got, err := f.sched.Get(completed.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "Flu", got.Diagnosis)
	assert.False(t, f.sched.SlotAvailable(d.ID, date, "09:00-10:00"))

	// Complete after cancel must not resurrect the appointment
	cancelled, err := f.sched.Book(p.ID, d.ID, date, "10:00-11:00")
	require.NoError(t, err)
	f.sched.Cancel(cancelled.ID)
	f.sched.Complete(cancelled.ID, "Flu", "Rest")

	got, err = f.sched.Get(cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
	assert.Empty(t, got.Diagnosis)
}

func TestEndToEndScenario(t *testing.T) {
	f := newFixture(t)
	p1 := f.patient(t, "P1")
	p2 := f.patient(t, "P2")
	d1 := f.doctor(t, "D1")
	date := testDate(t)

	first, err := f.sched.Book(p1.ID, d1.ID, date, "09:00-10:00")
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, first.Status)

	_, err = f.sched.Book(p2.ID, d1.ID, date, "09:00-10:00")
	require.ErrorIs(t, err, ErrSlotTaken)

	f.sched.Cancel(first.ID)

	second, err := f.sched.Book(p2.ID, d1.ID, date, "09:00-10:00")
	require.NoError(t, err)
	assert.Equal(t, p2.ID, second.PatientID)
}

func TestQueries(t *testing.T) {
	f := newFixture(t)
	p1 := f.patient(t, "John Doe")
	p2 := f.patient(t, "Jane Smith")
	d1 := f.doctor(t, "Dr. Smith")
	d2 := f.doctor(t, "Dr. Jones")
	date := testDate(t)
	nextDay := date.AddDate(0, 0, 1)

	a1, err := f.sched.Book(p1.ID, d1.ID, date, "09:00-10:00")
	require.NoError(t, err)
	_, err = f.sched.Book(p1.ID, d1.ID, date, "10:00-11:00")
	require.NoError(t, err)
	_, err = f.sched.Book(p2.ID, d2.ID, nextDay, "09:00-10:00")
	require.NoError(t, err)

	f.sched.Cancel(a1.ID)

	assert.Len(t, f.sched.ByPatient(p1.ID), 2)
	assert.Len(t, f.sched.ByPatient(p2.ID), 1)
	assert.Len(t, f.sched.ByDoctor(d1.ID), 2)
	assert.Len(t, f.sched.OnDate(date), 2)
	assert.Len(t, f.sched.OnDate(nextDay), 1)
	assert.Len(t, f.sched.ByStatus(StatusScheduled), 2)
	assert.Len(t, f.sched.ByStatus(StatusCancelled), 1)
	assert.Empty(t, f.sched.ByStatus(StatusCompleted))
	assert.Equal(t, 3, f.sched.Total())
}

func TestByStatusCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "John Doe")
	d := f.doctor(t, "Dr. Smith")

	_, err := f.sched.Book(p.ID, d.ID, testDate(t), "09:00-10:00")
	require.NoError(t, err)

	assert.Len(t, f.sched.ByStatus(Status("scheduled")), 1)
}

func TestSetSymptoms(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "John Doe")
	d := f.doctor(t, "Dr. Smith")

	appt, err := f.sched.Book(p.ID, d.ID, testDate(t), "09:00-10:00")
	require.NoError(t, err)

	require.NoError(t, f.sched.SetSymptoms(appt.ID, "persistent cough"))

	got, err := f.sched.Get(appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "persistent cough", got.Symptoms)

	assert.ErrorIs(t, f.sched.SetSymptoms("APT-UNKNOWN", "x"), ErrAppointmentNotFound)
}

func TestAnySlotLabelBooks(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "John Doe")
	d := f.doctor(t, "Dr. Smith")

	// The doctor's advertised vocabulary is not enforced
	appt, err := f.sched.Book(p.ID, d.ID, testDate(t), "23:00-23:30")
	require.NoError(t, err)
	assert.Equal(t, "23:00-23:30", appt.TimeSlot)
}
