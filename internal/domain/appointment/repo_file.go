package appointment

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/invitro/booking/internal/platform/storage"
)

// RecordName is the namespace of the durable appointment collection.
const RecordName = "appointments"

// fileRepo layers best-effort durability on top of the in-memory store:
// every mutation is persisted synchronously after it is applied. A failed
// save logs a warning and degrades the store to in-memory operation for
// the rest of the session; the mutation itself still succeeds.
type fileRepo struct {
	mem      *memRepo
	record   *storage.Record
	logger   zerolog.Logger
	degraded atomic.Bool
}

// NewFileRepo opens (or creates) the durable appointment store under dir.
// Missing or corrupt persisted state loads as an empty collection.
func NewFileRepo(dir string, logger zerolog.Logger) Repository {
	r := &fileRepo{
		mem:    NewMemRepo().(*memRepo),
		record: storage.NewRecord(dir, RecordName),
		logger: logger,
	}

	var appts []Appointment
	err := r.record.Load(&appts)
	switch {
	case err == nil:
		r.mem.restore(appts)
	case errors.Is(err, storage.ErrNotExist):
		// First run, nothing to restore.
	default:
		logger.Warn().Err(err).Str("record", r.record.Path()).
			Msg("appointment record unreadable, starting empty")
	}
	return r
}

func (r *fileRepo) Add(ctx context.Context, a *Appointment) error {
	if err := r.mem.Add(ctx, a); err != nil {
		return err
	}
	r.persist()
	return nil
}

func (r *fileRepo) Cancel(ctx context.Context, id string) error {
	if err := r.mem.Cancel(ctx, id); err != nil {
		return err
	}
	r.persist()
	return nil
}

func (r *fileRepo) GetByID(ctx context.Context, id string) (*Appointment, error) {
	return r.mem.GetByID(ctx, id)
}

func (r *fileRepo) List(ctx context.Context) ([]Appointment, error) {
	return r.mem.List(ctx)
}

func (r *fileRepo) ListByPatient(ctx context.Context, patientID string) ([]Appointment, error) {
	return r.mem.ListByPatient(ctx, patientID)
}

func (r *fileRepo) persist() {
	if r.degraded.Load() {
		return
	}
	if err := r.record.Save(r.mem.snapshot()); err != nil {
		r.degraded.Store(true)
		r.logger.Warn().Err(err).Str("record", r.record.Path()).
			Msg("appointment persistence failed, continuing in-memory only")
	}
}
