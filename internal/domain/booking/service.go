package booking

import (
	"context"
	"time"

	"github.com/invitro/booking/internal/domain/appointment"
	"github.com/invitro/booking/internal/domain/catalog"
)

// Service drives one booking workflow per request on behalf of the
// serving surface.
type Service struct {
	catalog *catalog.Service
	appts   *appointment.Service
	delay   time.Duration
	now     func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceClock pins the time source for every workflow the service
// creates.
func WithServiceClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithServiceSubmitDelay sets the simulated confirm latency for every
// workflow the service creates.
func WithServiceSubmitDelay(d time.Duration) ServiceOption {
	return func(s *Service) { s.delay = d }
}

func NewService(cat *catalog.Service, appts *appointment.Service, opts ...ServiceOption) *Service {
	s := &Service{
		catalog: cat,
		appts:   appts,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Book runs the whole workflow for a single request: target the doctor,
// select date and slot, confirm. Any workflow error is returned as-is so
// the handler can map it onto a response.
func (s *Service) Book(ctx context.Context, patientID, doctorID string, date time.Time, slot string) (*appointment.Appointment, error) {
	doctor, err := s.catalog.Get(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	w := New(s.appts, WithClock(s.now), WithSubmitDelay(s.delay))
	if err := w.Open(*doctor, patientID); err != nil {
		return nil, err
	}
	if err := w.SelectDate(date); err != nil {
		return nil, err
	}
	if err := w.SelectSlot(slot); err != nil {
		return nil, err
	}
	return w.Confirm(ctx)
}
