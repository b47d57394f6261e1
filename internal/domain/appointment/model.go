package appointment

import (
	"time"

	"github.com/invitro/booking/internal/domain/catalog"
)

// Status is the lifecycle state of a booked appointment.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Appointment is a persisted booking. Doctor is a snapshot captured at
// booking time, not a live reference into the catalog: later catalog
// changes never rewrite history.
type Appointment struct {
	ID        string         `db:"id" json:"id"`
	PatientID string         `db:"patient_id" json:"patient_id,omitempty"`
	Doctor    catalog.Doctor `db:"doctor" json:"doctor"`
	Date      time.Time      `db:"date" json:"date"`
	Time      string         `db:"time_slot" json:"time"`
	Status    Status         `db:"status" json:"status"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}
