package patient

import (
	"fmt"
	"time"

	"github.com/gnaneshwari22/hospital-scheduling/internal/ident"
)

// Service is the patient registry: plain CRUD plus a few read-side
// aggregations. The scheduling core consults it only for existence checks.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a patient with a fresh PAT- id and stores it.
func (s *Service) Register(name string, age int, gender, bloodGroup, contactNumber, address string) (*Patient, error) {
	p := &Patient{
		ID:            ident.New(ident.PatientPrefix),
		Name:          name,
		Age:           age,
		Gender:        gender,
		BloodGroup:    bloodGroup,
		ContactNumber: contactNumber,
		Address:       address,
		RegisteredAt:  time.Now(),
	}

	if err := s.repo.Add(p); err != nil {
		return nil, fmt.Errorf("register patient: %w", err)
	}
	return p, nil
}

func (s *Service) Get(id string) (*Patient, error) {
	return s.repo.Get(id)
}

func (s *Service) Update(p *Patient) error {
	return s.repo.Update(p)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// AddMedicalRecord appends an entry to the patient's medical history.
func (s *Service) AddMedicalRecord(id, record string) error {
	p, err := s.repo.Get(id)
	if err != nil {
		return err
	}

	// Replace rather than mutate in place: other goroutines may hold p.
	upd := *p
	upd.MedicalHistory = append(append([]string(nil), p.MedicalHistory...), record)
	return s.repo.Update(&upd)
}

// MedicalHistory returns the patient's history entries in insertion order.
func (s *Service) MedicalHistory(id string) ([]string, error) {
	p, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), p.MedicalHistory...), nil
}

// MarkCritical sets or clears the critical flag.
func (s *Service) MarkCritical(id string, critical bool) error {
	p, err := s.repo.Get(id)
	if err != nil {
		return err
	}

	upd := *p
	upd.Critical = critical
	return s.repo.Update(&upd)
}

func (s *Service) All() []*Patient {
	return s.repo.All()
}

func (s *Service) Critical() []*Patient {
	return s.repo.Critical()
}

func (s *Service) CountByBloodGroup() map[string]int {
	return s.repo.CountByBloodGroup()
}

// Exists is the existence-check contract the scheduling core depends on.
func (s *Service) Exists(id string) bool {
	return s.repo.Exists(id)
}

func (s *Service) Total() int {
	return s.repo.Total()
}
