package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the database schema. Statements are portable between SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		location_id TEXT PRIMARY KEY,
		sort_order INTEGER NOT NULL
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		route_id TEXT PRIMARY KEY,
		location_a TEXT NOT NULL,
		location_b TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		sort_order INTEGER NOT NULL
	);
	`

	createCarriersQuery := `
	CREATE TABLE IF NOT EXISTS carriers (
		carrier_id TEXT PRIMARY KEY,
		capacity INTEGER NOT NULL,
		start_location TEXT NOT NULL,
		sort_order INTEGER NOT NULL
	);
	`

	createPackagesQuery := `
	CREATE TABLE IF NOT EXISTS packages (
		package_id TEXT PRIMARY KEY,
		weight INTEGER NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		sort_order INTEGER NOT NULL
	);
	`

	createRunsQuery := `
	CREATE TABLE IF NOT EXISTS simulation_runs (
		run_id TEXT PRIMARY KEY,
		fingerprint TEXT NOT NULL,
		created_at TEXT NOT NULL,
		carriers_json TEXT NOT NULL,
		stranded_json TEXT NOT NULL
	);
	`

	createEventsQuery := `
	CREATE TABLE IF NOT EXISTS simulation_events (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		timestamp_seconds INTEGER NOT NULL,
		carrier_id TEXT NOT NULL,
		from_location TEXT NOT NULL,
		loaded_json TEXT NOT NULL,
		to_location TEXT NOT NULL,
		unloaded_json TEXT NOT NULL,
		PRIMARY KEY (run_id, seq)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_simulation_runs_fingerprint
	ON simulation_runs(fingerprint);
	`

	statements := []string{
		createLocationsQuery,
		createRoutesQuery,
		createCarriersQuery,
		createPackagesQuery,
		createRunsQuery,
		createEventsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
