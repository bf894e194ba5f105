package repository

import (
	"database/sql"
	"fmt"
)

// Schema bootstrap. Deleting a car must take its logs with it, so both log
// tables reference cars with ON DELETE CASCADE.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS cars (
		id           SERIAL PRIMARY KEY,
		registration TEXT NOT NULL UNIQUE,
		description  TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS fuel_logs (
		id             SERIAL PRIMARY KEY,
		car_id         INTEGER NOT NULL REFERENCES cars(id) ON DELETE CASCADE,
		logged_at      TEXT NOT NULL,
		fuel_amount    DOUBLE PRECISION NOT NULL,
		fuel_unit      TEXT NOT NULL DEFAULT 'litres',
		price_per_unit DOUBLE PRECISION NOT NULL,
		total_cost     DOUBLE PRECISION NOT NULL,
		odometer       DOUBLE PRECISION,
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS service_logs (
		id            SERIAL PRIMARY KEY,
		car_id        INTEGER NOT NULL REFERENCES cars(id) ON DELETE CASCADE,
		category      TEXT NOT NULL,
		logged_at     TEXT NOT NULL,
		cost          DOUBLE PRECISION NOT NULL,
		provider      TEXT NOT NULL DEFAULT '',
		notes         TEXT NOT NULL DEFAULT '',
		next_due_date TEXT,
		next_due_km   DOUBLE PRECISION,
		odometer      DOUBLE PRECISION,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// InitSchema creates the three tables if they do not exist yet.
func InitSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("error initializing schema: %w", err)
		}
	}
	return nil
}
