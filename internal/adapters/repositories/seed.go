package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"os"
	"strings"
)

// Populate the network tables from a JSON network description.
// Existing rows with the same ids are replaced.
func SeedFromJSON(db *sql.DB, dialect Dialect, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed network: read %q: %w", jsonPath, err)
	}

	var desc domain.NetworkDescription
	if err := json.Unmarshal(bytes, &desc); err != nil {
		return fmt.Errorf("seed network: parse json: %w", err)
	}

	return SeedNetwork(db, dialect, desc)
}

// Write a network description into the network tables in one transaction.
func SeedNetwork(db *sql.DB, dialect Dialect, desc domain.NetworkDescription) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed network: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exec := func(query string, args ...any) error {
		_, err := tx.Exec(dialect.rebind(query), args...)
		return err
	}

	// Reseeding replaces the whole network.
	for _, table := range []string{"packages", "carriers", "routes", "locations"} {
		if err := exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("seed network: clear %s: %w", table, err)
		}
	}

	for i, l := range desc.Locations {
		l = strings.TrimSpace(l)
		if l == "" {
			return fmt.Errorf("seed network: location at index %d: location cannot be empty", i+1)
		}
		err := exec(`
		INSERT INTO locations (location_id, sort_order) VALUES (?, ?)
		ON CONFLICT (location_id) DO UPDATE SET sort_order = EXCLUDED.sort_order;
		`, l, i)
		if err != nil {
			return fmt.Errorf("seed network: insert location %q: %w", l, err)
		}
	}

	for i, r := range desc.Routes {
		err := exec(`
		INSERT INTO routes (route_id, location_a, location_b, duration_minutes, sort_order)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (route_id) DO UPDATE
		SET location_a = EXCLUDED.location_a,
			location_b = EXCLUDED.location_b,
			duration_minutes = EXCLUDED.duration_minutes,
			sort_order = EXCLUDED.sort_order;
		`, r.RouteID, r.LocationA, r.LocationB, r.DurationMinutes, i)
		if err != nil {
			return fmt.Errorf("seed network: insert route %q: %w", r.RouteID, err)
		}
	}

	for i, c := range desc.Carriers {
		err := exec(`
		INSERT INTO carriers (carrier_id, capacity, start_location, sort_order)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (carrier_id) DO UPDATE
		SET capacity = EXCLUDED.capacity,
			start_location = EXCLUDED.start_location,
			sort_order = EXCLUDED.sort_order;
		`, c.CarrierID, c.Capacity, c.StartLocation, i)
		if err != nil {
			return fmt.Errorf("seed network: insert carrier %q: %w", c.CarrierID, err)
		}
	}

	for i, p := range desc.Packages {
		err := exec(`
		INSERT INTO packages (package_id, weight, origin, destination, sort_order)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (package_id) DO UPDATE
		SET weight = EXCLUDED.weight,
			origin = EXCLUDED.origin,
			destination = EXCLUDED.destination,
			sort_order = EXCLUDED.sort_order;
		`, p.PackageID, p.Weight, p.Origin, p.Destination, i)
		if err != nil {
			return fmt.Errorf("seed network: insert package %q: %w", p.PackageID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed network: commit tx: %w", err)
	}

	return nil
}
