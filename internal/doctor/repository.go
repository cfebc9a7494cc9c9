package doctor

import (
	"errors"
	"strings"

	"github.com/gnaneshwari22/hospital-scheduling/internal/store"
)

var (
	ErrNotFound  = errors.New("doctor not found")
	ErrDuplicate = errors.New("doctor already registered")
)

type Repository struct {
	doctors *store.Store[*Doctor]
}

func NewRepository() *Repository {
	return &Repository{
		doctors: store.New(func(d *Doctor) string { return d.ID }),
	}
}

func (r *Repository) Add(d *Doctor) error {
	if err := r.doctors.Put(d); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *Repository) Get(id string) (*Doctor, error) {
	d, err := r.doctors.Get(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return d, nil
}

func (r *Repository) Update(d *Doctor) error {
	if err := r.doctors.Update(d); err != nil {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(id string) error {
	if err := r.doctors.Delete(id); err != nil {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Exists(id string) bool {
	return r.doctors.Exists(id)
}

func (r *Repository) All() []*Doctor {
	return r.doctors.All()
}

// BySpecialization matches case-insensitively, as the registry always has.
func (r *Repository) BySpecialization(specialization string) []*Doctor {
	return store.Filter(r.doctors, func(d *Doctor) bool {
		return strings.EqualFold(d.Specialization, specialization)
	})
}

func (r *Repository) InDepartment(department string) []*Doctor {
	return store.Filter(r.doctors, func(d *Doctor) bool {
		return strings.EqualFold(d.Department, department)
	})
}

// ByDepartment groups every doctor by department.
func (r *Repository) ByDepartment() map[string][]*Doctor {
	return store.GroupBy(r.doctors, func(d *Doctor) string { return d.Department })
}

// AverageFeeByDepartment averages consultation fees per department.
func (r *Repository) AverageFeeByDepartment() map[string]float64 {
	return store.AverageBy(r.doctors,
		func(d *Doctor) string { return d.Department },
		func(d *Doctor) float64 { return d.ConsultationFee },
	)
}

func (r *Repository) Total() int {
	return r.doctors.Len()
}
