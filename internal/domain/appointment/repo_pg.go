package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invitro/booking/internal/domain/catalog"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo returns a Postgres-backed appointment store. The doctor
// snapshot is stored as a JSONB document so a booking keeps the doctor's
// details exactly as they were at booking time.
func NewPGRepo(pool *pgxpool.Pool) Repository {
	return &pgRepo{pool: pool}
}

const apptCols = `id, patient_id, doctor, date, time_slot, status, created_at, position`

func (r *pgRepo) Add(ctx context.Context, a *Appointment) error {
	doctor, err := json.Marshal(a.Doctor)
	if err != nil {
		return fmt.Errorf("encode doctor snapshot: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO appointment (id, patient_id, doctor, date, time_slot, status, created_at, position)
		VALUES ($1,$2,$3,$4,$5,$6,$7,
			(SELECT COALESCE(MAX(position), -1) + 1 FROM appointment))`,
		a.ID, a.PatientID, doctor, a.Date, a.Time, a.Status, a.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateID
	}
	return err
}

func (r *pgRepo) Cancel(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE appointment SET status = $2 WHERE id = $1`, id, StatusCancelled)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var (
		a        Appointment
		doctor   []byte
		position int
	)
	err := row.Scan(&a.ID, &a.PatientID, &doctor, &a.Date, &a.Time, &a.Status, &a.CreatedAt, &position)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(doctor, &a.Doctor); err != nil {
		return nil, fmt.Errorf("decode doctor snapshot: %w", err)
	}
	return &a, nil
}

func (r *pgRepo) GetByID(ctx context.Context, id string) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
}

func (r *pgRepo) List(ctx context.Context) ([]Appointment, error) {
	return r.list(ctx, `SELECT `+apptCols+` FROM appointment ORDER BY position`)
}

func (r *pgRepo) ListByPatient(ctx context.Context, patientID string) ([]Appointment, error) {
	return r.list(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE patient_id = $1 ORDER BY position`, patientID)
}

func (r *pgRepo) list(ctx context.Context, sql string, args ...interface{}) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Appointment
	for rows.Next() {
		var (
			a        Appointment
			doctor   []byte
			position int
		)
		if err := rows.Scan(&a.ID, &a.PatientID, &doctor, &a.Date, &a.Time,
			&a.Status, &a.CreatedAt, &position); err != nil {
			return nil, err
		}
		var snap catalog.Doctor
		if err := json.Unmarshal(doctor, &snap); err != nil {
			return nil, fmt.Errorf("decode doctor snapshot: %w", err)
		}
		a.Doctor = snap
		out = append(out, a)
	}
	return out, rows.Err()
}
