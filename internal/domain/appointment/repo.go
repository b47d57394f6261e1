package appointment

import (
	"context"
	"errors"
)

// Store operation errors. Duplicate ids are a programming-error condition
// (ids are system-generated) but both conditions are explicit values so
// callers and tests can assert on them.
var (
	ErrDuplicateID = errors.New("appointment id already exists")
	ErrNotFound    = errors.New("appointment not found")
)

// Repository is the persistence contract for booked appointments.
// Implementations must preserve insertion order in List. Cancel marks the
// appointment cancelled rather than deleting the record.
type Repository interface {
	Add(ctx context.Context, a *Appointment) error
	Cancel(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]Appointment, error)
}
