package patient

import (
	"errors"

	"github.com/gnaneshwari22/hospital-scheduling/internal/store"
)

var (
	ErrNotFound  = errors.New("patient not found")
	ErrDuplicate = errors.New("patient already registered")
)

// Repository is the patient table. It owns no cross-entity invariants; every
// method is safe for concurrent use on its own.
type Repository struct {
	patients *store.Store[*Patient]
}

func NewRepository() *Repository {
	return &Repository{
		patients: store.New(func(p *Patient) string { return p.ID }),
	}
}

func (r *Repository) Add(p *Patient) error {
	if err := r.patients.Put(p); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *Repository) Get(id string) (*Patient, error) {
	p, err := r.patients.Get(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *Repository) Update(p *Patient) error {
	if err := r.patients.Update(p); err != nil {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(id string) error {
	if err := r.patients.Delete(id); err != nil {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Exists(id string) bool {
	return r.patients.Exists(id)
}

func (r *Repository) All() []*Patient {
	return r.patients.All()
}

// Critical returns every patient currently flagged critical.
func (r *Repository) Critical() []*Patient {
	return store.Filter(r.patients, func(p *Patient) bool { return p.Critical })
}

// CountByBloodGroup counts registered patients per blood group.
func (r *Repository) CountByBloodGroup() map[string]int {
	return store.CountBy(r.patients, func(p *Patient) string { return p.BloodGroup })
}

func (r *Repository) Total() int {
	return r.patients.Len()
}
