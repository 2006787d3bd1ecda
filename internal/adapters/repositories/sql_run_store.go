package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/platform/obs"
	"time"
)

// SQLRunStore persists simulation runs and their event logs.
type SQLRunStore struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLRunStore(db *sql.DB, dialect Dialect) *SQLRunStore {
	return &SQLRunStore{DB: db, Dialect: dialect}
}

// Store a run and all its events in one transaction.
func (s *SQLRunStore) SaveRun(ctx context.Context, run *domain.SimulationRun) (err error) {
	defer obs.Time(ctx, "run.store.SaveRun")(&err)

	if s.DB == nil {
		return errors.New("run store: db is nil")
	}
	if run == nil || run.RunID == "" {
		return errors.New("save run: run id must not be empty")
	}

	carriersJSON, err := json.Marshal(run.Carriers)
	if err != nil {
		return fmt.Errorf("save run: encode carriers: %w", err)
	}
	strandedJSON, err := json.Marshal(run.Stranded)
	if err != nil {
		return fmt.Errorf("save run: encode stranded: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save run: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, s.Dialect.rebind(`
	INSERT INTO simulation_runs (run_id, fingerprint, created_at, carriers_json, stranded_json)
	VALUES (?, ?, ?, ?, ?);
	`), run.RunID, run.Fingerprint, run.CreatedAt.UTC().Format(time.RFC3339Nano), string(carriersJSON), string(strandedJSON))
	if err != nil {
		return fmt.Errorf("save run: insert run %q: %w", run.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx, s.Dialect.rebind(`
	INSERT INTO simulation_events (
		run_id,
		seq,
		timestamp_seconds,
		carrier_id,
		from_location,
		loaded_json,
		to_location,
		unloaded_json
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("save run: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, e := range run.Events {
		loaded, err := json.Marshal(nonNil(e.Loaded))
		if err != nil {
			return fmt.Errorf("save run: encode event #%d: %w", i, err)
		}
		unloaded, err := json.Marshal(nonNil(e.Unloaded))
		if err != nil {
			return fmt.Errorf("save run: encode event #%d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, run.RunID, i, e.Timestamp, e.CarrierID, string(e.From), string(loaded), string(e.To), string(unloaded)); err != nil {
			return fmt.Errorf("save run: insert event #%d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save run: commit: %w", err)
	}
	return nil
}

// Fetch a run with its events in emission order.
func (s *SQLRunStore) GetRun(ctx context.Context, runID string) (_ *domain.SimulationRun, err error) {
	defer obs.Time(ctx, "run.store.GetRun")(&err)

	if s.DB == nil {
		return nil, errors.New("run store: db is nil")
	}

	run := &domain.SimulationRun{RunID: runID}
	var createdAt, carriersJSON, strandedJSON string
	err = s.DB.QueryRowContext(ctx, s.Dialect.rebind(`
	SELECT fingerprint, created_at, carriers_json, stranded_json
	FROM simulation_runs
	WHERE run_id = ?;
	`), runID).Scan(&run.Fingerprint, &createdAt, &carriersJSON, &strandedJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run: query simulation_runs table: %w", err)
	}

	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("get run: parse created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(carriersJSON), &run.Carriers); err != nil {
		return nil, fmt.Errorf("get run: decode carriers: %w", err)
	}
	if err := json.Unmarshal([]byte(strandedJSON), &run.Stranded); err != nil {
		return nil, fmt.Errorf("get run: decode stranded: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, s.Dialect.rebind(`
	SELECT timestamp_seconds, carrier_id, from_location, loaded_json, to_location, unloaded_json
	FROM simulation_events
	WHERE run_id = ?
	ORDER BY seq;
	`), runID)
	if err != nil {
		return nil, fmt.Errorf("get run: query simulation_events table: %w", err)
	}
	defer rows.Close()

	run.Events = make([]domain.Event, 0, 64)
	for rows.Next() {
		var (
			e                domain.Event
			from, to         string
			loaded, unloaded string
		)
		if err := rows.Scan(&e.Timestamp, &e.CarrierID, &from, &loaded, &to, &unloaded); err != nil {
			return nil, fmt.Errorf("get run: scan rows: %w", err)
		}
		e.From, e.To = domain.Location(from), domain.Location(to)
		if err := json.Unmarshal([]byte(loaded), &e.Loaded); err != nil {
			return nil, fmt.Errorf("get run: decode loaded: %w", err)
		}
		if err := json.Unmarshal([]byte(unloaded), &e.Unloaded); err != nil {
			return nil, fmt.Errorf("get run: decode unloaded: %w", err)
		}
		run.Events = append(run.Events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get run: row iteration: %w", err)
	}

	return run, nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
