package appointment

import (
	"context"
	"fmt"
)

// Service validates appointment records before they reach the store. All
// writes to the appointment collection flow through it; nothing mutates
// the repository directly.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add appends a new appointment. The id must be set (it is system
// generated by the booking workflow) and the status must be a known value.
func (s *Service) Add(ctx context.Context, a *Appointment) error {
	if a.ID == "" {
		return fmt.Errorf("appointment id is required")
	}
	if a.Status == "" {
		a.Status = StatusConfirmed
	}
	if !a.Status.Valid() {
		return fmt.Errorf("invalid appointment status: %s", a.Status)
	}
	if a.Time == "" {
		return fmt.Errorf("time slot is required")
	}
	if a.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return s.repo.Add(ctx, a)
}

// Cancel marks the appointment cancelled. ErrNotFound when the id is
// absent.
func (s *Service) Cancel(ctx context.Context, id string) error {
	return s.repo.Cancel(ctx, id)
}

// Get returns a single appointment by id.
func (s *Service) Get(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every appointment in insertion order.
func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

// ListByPatient returns the appointments booked under the given session
// owner, in insertion order.
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
