package doctor

import (
	"fmt"

	"github.com/gnaneshwari22/hospital-scheduling/internal/ident"
)

// Service is the doctor registry. Like the patient registry it is read-mostly
// CRUD; the scheduling core only needs Exists.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a doctor with a fresh DOC- id and the default slot
// vocabulary.
func (s *Service) Register(name, specialization, department, contactNumber, email string, experienceYears int, consultationFee float64) (*Doctor, error) {
	d := &Doctor{
		ID:              ident.New(ident.DoctorPrefix),
		Name:            name,
		Specialization:  specialization,
		Department:      department,
		ContactNumber:   contactNumber,
		Email:           email,
		ExperienceYears: experienceYears,
		ConsultationFee: consultationFee,
		Slots:           append([]string(nil), DefaultSlots...),
	}

	if err := s.repo.Add(d); err != nil {
		return nil, fmt.Errorf("register doctor: %w", err)
	}
	return d, nil
}

func (s *Service) Get(id string) (*Doctor, error) {
	return s.repo.Get(id)
}

func (s *Service) Update(d *Doctor) error {
	return s.repo.Update(d)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// AddQualification appends a qualification to the doctor's list.
func (s *Service) AddQualification(id, qualification string) error {
	d, err := s.repo.Get(id)
	if err != nil {
		return err
	}

	upd := *d
	upd.Qualifications = append(append([]string(nil), d.Qualifications...), qualification)
	return s.repo.Update(&upd)
}

func (s *Service) All() []*Doctor {
	return s.repo.All()
}

func (s *Service) BySpecialization(specialization string) []*Doctor {
	return s.repo.BySpecialization(specialization)
}

func (s *Service) InDepartment(department string) []*Doctor {
	return s.repo.InDepartment(department)
}

func (s *Service) ByDepartment() map[string][]*Doctor {
	return s.repo.ByDepartment()
}

func (s *Service) AverageFeeByDepartment() map[string]float64 {
	return s.repo.AverageFeeByDepartment()
}

// Exists is the existence-check contract the scheduling core depends on.
func (s *Service) Exists(id string) bool {
	return s.repo.Exists(id)
}

func (s *Service) Total() int {
	return s.repo.Total()
}
