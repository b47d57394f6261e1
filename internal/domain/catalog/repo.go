package catalog

import (
	"context"
	"errors"
)

// ErrDoctorNotFound is returned when no doctor has the requested id.
var ErrDoctorNotFound = errors.New("doctor not found")

// Repository provides read access to the doctor catalog. The catalog is
// static for the scope of this service: there are no create, update or
// delete operations.
type Repository interface {
	List(ctx context.Context) ([]Doctor, error)
	GetByID(ctx context.Context, id string) (*Doctor, error)
}
