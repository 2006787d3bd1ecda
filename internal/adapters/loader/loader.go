package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// File names expected in a CSV network directory.
const (
	LocationsFile = "locations.csv"
	RoutesFile    = "routes.csv"
	CarriersFile  = "carriers.csv"
	PackagesFile  = "packages.csv"
)

// LoadJSON reads a network description from a JSON file.
func LoadJSON(path string) (domain.NetworkDescription, error) {
	var desc domain.NetworkDescription

	b, err := os.ReadFile(path)
	if err != nil {
		return desc, fmt.Errorf("load json network: read %q: %w", path, err)
	}
	if err := json.Unmarshal(b, &desc); err != nil {
		return desc, fmt.Errorf("load json network: parse %q: %w", path, err)
	}
	return desc, nil
}

type locationRow struct {
	LocationID string `csv:"location_id"`
}

// LoadCSVDir reads routes.csv, carriers.csv and packages.csv from dir.
// locations.csv is optional and declares locations that no route touches.
func LoadCSVDir(dir string) (domain.NetworkDescription, error) {
	var desc domain.NetworkDescription

	locPath := filepath.Join(dir, LocationsFile)
	if _, err := os.Stat(locPath); err == nil {
		var rows []locationRow
		if err := readCSV(locPath, &rows); err != nil {
			return desc, err
		}
		for _, r := range rows {
			desc.Locations = append(desc.Locations, r.LocationID)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return desc, fmt.Errorf("load csv network: stat %q: %w", locPath, err)
	}

	if err := readCSV(filepath.Join(dir, RoutesFile), &desc.Routes); err != nil {
		return desc, err
	}
	if err := readCSV(filepath.Join(dir, CarriersFile), &desc.Carriers); err != nil {
		return desc, err
	}
	if err := readCSV(filepath.Join(dir, PackagesFile), &desc.Packages); err != nil {
		return desc, err
	}
	return desc, nil
}

func readCSV(path string, out any) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load csv network: open %q: %w", path, err)
	}
	defer in.Close()

	if err := gocsv.UnmarshalFile(in, out); err != nil {
		return fmt.Errorf("load csv network: parse %q: %w", path, err)
	}
	return nil
}
