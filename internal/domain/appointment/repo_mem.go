package appointment

import (
	"context"
	"sync"
)

type memRepo struct {
	mu    sync.RWMutex
	appts []Appointment
	index map[string]int
}

// NewMemRepo returns a volatile in-memory appointment store. It is the
// fallback when no durable backend is configured and the building block
// for the file-backed store.
func NewMemRepo() Repository {
	return &memRepo{index: make(map[string]int)}
}

func (r *memRepo) Add(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.add(a)
}

func (r *memRepo) add(a *Appointment) error {
	if _, exists := r.index[a.ID]; exists {
		return ErrDuplicateID
	}
	r.index[a.ID] = len(r.appts)
	r.appts = append(r.appts, *a)
	return nil
}

func (r *memRepo) Cancel(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, exists := r.index[id]
	if !exists {
		return ErrNotFound
	}
	r.appts[i].Status = StatusCancelled
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, exists := r.index[id]
	if !exists {
		return nil, ErrNotFound
	}
	a := r.appts[i]
	return &a, nil
}

func (r *memRepo) List(_ context.Context) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Appointment, len(r.appts))
	copy(out, r.appts)
	return out, nil
}

func (r *memRepo) ListByPatient(_ context.Context, patientID string) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Appointment
	for _, a := range r.appts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

// snapshot returns the current ordered contents for persistence.
func (r *memRepo) snapshot() []Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Appointment, len(r.appts))
	copy(out, r.appts)
	return out
}

// restore replaces the contents with previously persisted records.
func (r *memRepo) restore(appts []Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appts = make([]Appointment, len(appts))
	copy(r.appts, appts)
	r.index = make(map[string]int, len(appts))
	for i, a := range appts {
		r.index[a.ID] = i
	}
}
