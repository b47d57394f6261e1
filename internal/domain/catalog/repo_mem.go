package catalog

import "context"

type memRepo struct {
	doctors []Doctor
}

// NewMemRepo returns an in-memory catalog backed by the given doctors.
// The slice is copied so later mutation by the caller cannot reorder or
// alter the catalog.
func NewMemRepo(doctors []Doctor) Repository {
	cp := make([]Doctor, len(doctors))
	copy(cp, doctors)
	return &memRepo{doctors: cp}
}

func (r *memRepo) List(_ context.Context) ([]Doctor, error) {
	out := make([]Doctor, len(r.doctors))
	copy(out, r.doctors)
	return out, nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*Doctor, error) {
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			d := r.doctors[i]
			return &d, nil
		}
	}
	return nil, ErrDoctorNotFound
}
