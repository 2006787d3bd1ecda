package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Raw network description as supplied by callers.
// Route durations are in minutes; BuildState converts them to seconds.
type NetworkDescription struct {
	Locations []string      `json:"locations"`
	Routes    []RouteSpec   `json:"routes"`
	Carriers  []CarrierSpec `json:"carriers"`
	Packages  []PackageSpec `json:"packages"`
}

type RouteSpec struct {
	RouteID         string `json:"route_id" csv:"route_id"`
	LocationA       string `json:"location_a" csv:"location_a"`
	LocationB       string `json:"location_b" csv:"location_b"`
	DurationMinutes int    `json:"duration_minutes" csv:"duration_minutes"`
}

type CarrierSpec struct {
	CarrierID     string `json:"carrier_id" csv:"carrier_id"`
	Capacity      int    `json:"capacity" csv:"capacity"`
	StartLocation string `json:"start_location" csv:"start_location"`
}

type PackageSpec struct {
	PackageID   string `json:"package_id" csv:"package_id"`
	Weight      int    `json:"weight" csv:"weight"`
	Origin      string `json:"origin" csv:"origin"`
	Destination string `json:"destination" csv:"destination"`
}

// Fingerprint identifies a description by the hash of its canonical JSON.
// Order matters: the same items in a different order schedule differently.
func (d NetworkDescription) Fingerprint() string {
	b, _ := json.Marshal(d)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
