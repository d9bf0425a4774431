package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The CHECK constraints back up the guarded updates: a write that would
// drive a balance or stock negative fails at the storage layer.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id           SERIAL PRIMARY KEY,
		name         VARCHAR(100) NOT NULL,
		grade        INTEGER NOT NULL DEFAULT 3 CHECK (grade IN (3, 4, 5, 6)),
		ticket_count INTEGER NOT NULL DEFAULT 0 CHECK (ticket_count >= 0),
		password     VARCHAR(128) NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_students_grade_name ON students (grade, name)`,
	`CREATE TABLE IF NOT EXISTS items (
		id         SERIAL PRIMARY KEY,
		name       VARCHAR(200) NOT NULL,
		cost       INTEGER NOT NULL CHECK (cost >= 1),
		quantity   INTEGER NOT NULL DEFAULT 10 CHECK (quantity >= 0),
		link       TEXT,
		image_url  TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id           SERIAL PRIMARY KEY,
		student_id   INTEGER NOT NULL REFERENCES students (id) ON DELETE CASCADE,
		item_id      INTEGER NOT NULL REFERENCES items (id) ON DELETE CASCADE,
		cost         INTEGER NOT NULL CHECK (cost >= 1),
		timestamp    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		is_delivered BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_student ON purchases (student_id, timestamp DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_delivered ON purchases (is_delivered)`,
}

// Migrate creates the market tables when they do not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i, err)
		}
	}
	return nil
}
