package patient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(NewRepository())
}

func register(t *testing.T, svc *Service, name, bloodGroup string) *Patient {
	t.Helper()
	p, err := svc.Register(name, 30, "Male", bloodGroup, "1234567890", "123 Main St")
	require.NoError(t, err)
	return p
}

func TestRegister(t *testing.T) {
	svc := newTestService()

	p := register(t, svc, "John Doe", "O+")

	assert.True(t, strings.HasPrefix(p.ID, "PAT-"))
	assert.Equal(t, "John Doe", p.Name)
	assert.False(t, p.Critical)
	assert.False(t, p.RegisteredAt.IsZero())
	assert.True(t, svc.Exists(p.ID))
}

func TestRegisterAssignsUniqueIDs(t *testing.T) {
	svc := newTestService()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		p := register(t, svc, "Patient", "A+")
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestGetMissing(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get("PAT-UNKNOWN")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMedicalHistory(t *testing.T) {
	svc := newTestService()
	p := register(t, svc, "John Doe", "O+")

	require.NoError(t, svc.AddMedicalRecord(p.ID, "2025-01-05: mild fever"))
	require.NoError(t, svc.AddMedicalRecord(p.ID, "2025-02-11: follow-up"))

	history, err := svc.MedicalHistory(p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-05: mild fever", "2025-02-11: follow-up"}, history)
}

func TestAddMedicalRecordMissingPatient(t *testing.T) {
	svc := newTestService()
	assert.ErrorIs(t, svc.AddMedicalRecord("PAT-UNKNOWN", "entry"), ErrNotFound)
}

func TestMarkCritical(t *testing.T) {
	svc := newTestService()
	p := register(t, svc, "John Doe", "O+")

	require.NoError(t, svc.MarkCritical(p.ID, true))

	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	assert.True(t, got.Critical)

	critical := svc.Critical()
	require.Len(t, critical, 1)
	assert.Equal(t, p.ID, critical[0].ID)

	require.NoError(t, svc.MarkCritical(p.ID, false))
	assert.Empty(t, svc.Critical())
}

func TestCountByBloodGroup(t *testing.T) {
	svc := newTestService()

	register(t, svc, "A", "O+")
	register(t, svc, "B", "O+")
	register(t, svc, "C", "A-")

	counts := svc.CountByBloodGroup()
	assert.Equal(t, 2, counts["O+"])
	assert.Equal(t, 1, counts["A-"])
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	p := register(t, svc, "John Doe", "O+")

	require.NoError(t, svc.Delete(p.ID))
	assert.False(t, svc.Exists(p.ID))
	assert.ErrorIs(t, svc.Delete(p.ID), ErrNotFound)
}

func TestTotal(t *testing.T) {
	svc := newTestService()
	assert.Equal(t, 0, svc.Total())

	register(t, svc, "A", "O+")
	register(t, svc, "B", "B+")
	assert.Equal(t, 2, svc.Total())
}
