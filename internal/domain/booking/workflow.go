package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/invitro/booking/internal/domain/appointment"
	"github.com/invitro/booking/internal/domain/catalog"
)

// BookingWindowDays is how far ahead of today a date may be selected,
// inclusive.
const BookingWindowDays = 30

// Workflow errors. Validation failures are reported to the caller and
// never mutate workflow state.
var (
	ErrDoctorUnavailable = errors.New("doctor is fully booked")
	ErrAlreadyOpen       = errors.New("workflow already targets a doctor")
	ErrNotOpen           = errors.New("no doctor selected")
	ErrDateOutOfRange    = errors.New("date is outside the booking window")
	ErrInvalidSlot       = errors.New("time slot is not offered")
	ErrNotReady          = errors.New("date and time slot must both be selected")
	ErrSubmitInFlight    = errors.New("confirmation already in progress")
	ErrClosed            = errors.New("booking workflow is closed")
)

// State is the workflow's position in the booking flow.
type State int

const (
	StateIdle State = iota
	StateSelectingDate
	StateSelectingSlot
	StateReadyToConfirm
	StateSubmitting
	StateConfirmed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelectingDate:
		return "selecting_date"
	case StateSelectingSlot:
		return "selecting_slot"
	case StateReadyToConfirm:
		return "ready_to_confirm"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Terminal reports whether the workflow has finished, one way or the
// other.
func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateCancelled
}

// Workflow turns a patient's date and time-slot choice for one doctor
// into a persisted appointment. One instance serves one booking attempt
// and is discarded afterwards.
type Workflow struct {
	mu        sync.Mutex
	state     State
	doctor    catalog.Doctor
	patientID string
	date      time.Time
	slot      string

	store *appointment.Service
	now   func() time.Time
	delay time.Duration
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithClock injects the time source used for the booking window and the
// created-at stamp. Tests pin it to a fixed instant.
func WithClock(now func() time.Time) Option {
	return func(w *Workflow) { w.now = now }
}

// WithSubmitDelay sets the simulated latency applied during Confirm. It
// stands in for the eventual network round-trip; zero disables it.
func WithSubmitDelay(d time.Duration) Option {
	return func(w *Workflow) { w.delay = d }
}

// New returns an idle workflow that will commit into the given store.
func New(store *appointment.Service, opts ...Option) *Workflow {
	w := &Workflow{
		state: StateIdle,
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Selection returns the currently chosen date and slot.
func (w *Workflow) Selection() (date time.Time, slot string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.date, w.slot
}

// Open targets the workflow at a doctor on behalf of the given patient.
// A fully booked doctor is rejected. Today's date is pre-selected as a
// convenience default; the slot starts unselected.
func (w *Workflow) Open(doctor catalog.Doctor, patientID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Terminal() {
		return ErrClosed
	}
	if w.state != StateIdle {
		return ErrAlreadyOpen
	}
	if !doctor.Bookable() {
		return ErrDoctorUnavailable
	}
	w.doctor = doctor
	w.patientID = patientID
	w.date = midnight(w.now())
	w.slot = ""
	w.state = StateSelectingDate
	return nil
}

// SelectDate records the appointment date. Dates before today or beyond
// today+30 days are rejected without a state change. Only the calendar
// day matters: the candidate is rebuilt in the clock's location before
// the range check, so a date parsed in UTC still lands on the same day
// the caller named.
func (w *Workflow) SelectDate(d time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}

	today := midnight(w.now())
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, today.Location())
	if day.Before(today) || day.After(today.AddDate(0, 0, BookingWindowDays)) {
		return ErrDateOutOfRange
	}

	w.date = day
	if w.slot != "" {
		w.state = StateReadyToConfirm
	} else {
		w.state = StateSelectingDate
	}
	return nil
}

// SelectSlot records the time slot. Labels outside the fixed slot set are
// rejected without a state change.
func (w *Workflow) SelectSlot(slot string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}
	if !ValidSlot(slot) {
		return ErrInvalidSlot
	}

	w.slot = slot
	if !w.date.IsZero() {
		w.state = StateReadyToConfirm
	} else {
		w.state = StateSelectingSlot
	}
	return nil
}

// Confirm commits the selection as a new appointment. It is only valid
// from ReadyToConfirm. While the submit is in flight a second Confirm is
// an explicit no-op error, so repeated user action cannot create
// duplicate appointments. Cancelling ctx during the simulated latency
// aborts before the write starts; once the write has started it cannot
// be aborted. A store failure reverts the workflow to ReadyToConfirm with
// the selection intact so the caller can retry.
func (w *Workflow) Confirm(ctx context.Context) (*appointment.Appointment, error) {
	w.mu.Lock()
	switch w.state {
	case StateSubmitting:
		w.mu.Unlock()
		return nil, ErrSubmitInFlight
	case StateConfirmed, StateCancelled:
		w.mu.Unlock()
		return nil, ErrClosed
	case StateReadyToConfirm:
	default:
		w.mu.Unlock()
		return nil, ErrNotReady
	}
	w.state = StateSubmitting
	doctor := w.doctor
	patientID := w.patientID
	date := w.date
	slot := w.slot
	delay := w.delay
	createdAt := w.now()
	w.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			w.revertToReady()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	appt := &appointment.Appointment{
		ID:        uuid.New().String(),
		PatientID: patientID,
		Doctor:    doctor,
		Date:      date,
		Time:      slot,
		Status:    appointment.StatusConfirmed,
		CreatedAt: createdAt,
	}
	if err := w.store.Add(ctx, appt); err != nil {
		w.revertToReady()
		return nil, fmt.Errorf("commit appointment: %w", err)
	}

	w.mu.Lock()
	if w.state == StateSubmitting {
		w.state = StateConfirmed
	}
	w.mu.Unlock()
	return appt, nil
}

// Cancel abandons the workflow from any non-terminal state, discarding
// the selection without touching the appointment store. Calling it while
// a submit is in flight detaches the caller; the in-flight commit itself
// cannot be aborted and still lands.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Terminal() {
		return ErrClosed
	}
	w.state = StateCancelled
	return nil
}

func (w *Workflow) editable() error {
	switch w.state {
	case StateIdle:
		return ErrNotOpen
	case StateSubmitting:
		return ErrSubmitInFlight
	case StateConfirmed, StateCancelled:
		return ErrClosed
	}
	return nil
}

func (w *Workflow) revertToReady() {
	w.mu.Lock()
	if w.state == StateSubmitting {
		w.state = StateReadyToConfirm
	}
	w.mu.Unlock()
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
