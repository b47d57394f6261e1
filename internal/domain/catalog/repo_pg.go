package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo returns a Postgres-backed catalog. The doctor table is created
// by the migrate command and seeded by SeedPG.
func NewPGRepo(pool *pgxpool.Pool) Repository {
	return &pgRepo{pool: pool}
}

const doctorCols = `id, name, specialty, photo, rating, review_count, location, available_slots, tags`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.Photo, &d.Rating,
		&d.ReviewCount, &d.Location, &d.AvailableSlots, &d.Tags)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *pgRepo) List(ctx context.Context) ([]Doctor, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+doctorCols+` FROM doctor ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.Photo, &d.Rating,
			&d.ReviewCount, &d.Location, &d.AvailableSlots, &d.Tags); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *pgRepo) GetByID(ctx context.Context, id string) (*Doctor, error) {
	return scanDoctor(r.pool.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctor WHERE id = $1`, id))
}

// SeedPG loads the given doctors into the doctor table, preserving their
// slice order as the catalog order. Existing rows are replaced so the seed
// is idempotent.
func SeedPG(ctx context.Context, pool *pgxpool.Pool, doctors []Doctor) error {
	for i, d := range doctors {
		_, err := pool.Exec(ctx, `
			INSERT INTO doctor (id, name, specialty, photo, rating, review_count, location, available_slots, tags, position)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			ON CONFLICT (id) DO UPDATE SET
				name=$2, specialty=$3, photo=$4, rating=$5, review_count=$6,
				location=$7, available_slots=$8, tags=$9, position=$10`,
			d.ID, d.Name, d.Specialty, d.Photo, d.Rating,
			d.ReviewCount, d.Location, d.AvailableSlots, d.Tags, i)
		if err != nil {
			return err
		}
	}
	return nil
}
