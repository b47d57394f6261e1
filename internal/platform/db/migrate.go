package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema holds the statements that bring a fresh database up to the
// current layout. Statements are idempotent so Migrate can run on
// every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS doctor (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    specialty       TEXT NOT NULL,
    photo           TEXT NOT NULL DEFAULT '',
    rating          DOUBLE PRECISION NOT NULL DEFAULT 0,
    review_count    INTEGER NOT NULL DEFAULT 0,
    location        TEXT NOT NULL DEFAULT '',
    available_slots INTEGER NOT NULL DEFAULT 0,
    tags            TEXT[] NOT NULL DEFAULT '{}',
    position        INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS appointment (
    id         TEXT PRIMARY KEY,
    patient_id TEXT NOT NULL,
    doctor     JSONB NOT NULL,
    date       TIMESTAMPTZ NOT NULL,
    time_slot  TEXT NOT NULL,
    status     TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    position   INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE INDEX IF NOT EXISTS appointment_patient_idx ON appointment (patient_id)`,
}

// Migrate applies the schema to the connected database. It is safe to
// call repeatedly.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
