package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/platform/obs"
)

// SQL-backed implementation of the NetworkRepository port.
type SQLNetworkRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLNetworkRepository(db *sql.DB, dialect Dialect) *SQLNetworkRepository {
	return &SQLNetworkRepository{DB: db, Dialect: dialect}
}

// Return the stored network with every list in its seeded order.
func (s *SQLNetworkRepository) LoadNetwork(ctx context.Context) (_ domain.NetworkDescription, err error) {
	defer obs.Time(ctx, "network.repo.LoadNetwork")(&err)

	var desc domain.NetworkDescription
	if s.DB == nil {
		return desc, errors.New("sql network repository: DB is nil")
	}

	err = s.query(ctx, `SELECT location_id FROM locations ORDER BY sort_order;`, func(rows *sql.Rows) error {
		var l string
		if err := rows.Scan(&l); err != nil {
			return err
		}
		desc.Locations = append(desc.Locations, l)
		return nil
	})
	if err != nil {
		return desc, fmt.Errorf("load network: locations: %w", err)
	}

	err = s.query(ctx, `
	SELECT route_id, location_a, location_b, duration_minutes
	FROM routes
	ORDER BY sort_order;
	`, func(rows *sql.Rows) error {
		var r domain.RouteSpec
		if err := rows.Scan(&r.RouteID, &r.LocationA, &r.LocationB, &r.DurationMinutes); err != nil {
			return err
		}
		desc.Routes = append(desc.Routes, r)
		return nil
	})
	if err != nil {
		return desc, fmt.Errorf("load network: routes: %w", err)
	}

	err = s.query(ctx, `
	SELECT carrier_id, capacity, start_location
	FROM carriers
	ORDER BY sort_order;
	`, func(rows *sql.Rows) error {
		var c domain.CarrierSpec
		if err := rows.Scan(&c.CarrierID, &c.Capacity, &c.StartLocation); err != nil {
			return err
		}
		desc.Carriers = append(desc.Carriers, c)
		return nil
	})
	if err != nil {
		return desc, fmt.Errorf("load network: carriers: %w", err)
	}

	err = s.query(ctx, `
	SELECT package_id, weight, origin, destination
	FROM packages
	ORDER BY sort_order;
	`, func(rows *sql.Rows) error {
		var p domain.PackageSpec
		if err := rows.Scan(&p.PackageID, &p.Weight, &p.Origin, &p.Destination); err != nil {
			return err
		}
		desc.Packages = append(desc.Packages, p)
		return nil
	})
	if err != nil {
		return desc, fmt.Errorf("load network: packages: %w", err)
	}

	return desc, nil
}

func (s *SQLNetworkRepository) query(ctx context.Context, q string, scan func(*sql.Rows) error, args ...any) error {
	rows, err := s.DB.QueryContext(ctx, s.Dialect.rebind(q), args...)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("row iteration: %w", err)
	}
	return nil
}
