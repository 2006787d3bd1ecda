package dto

import "time"

type RouteRequest struct {
	RouteID         string `json:"route_id"`
	LocationA       string `json:"location_a"`
	LocationB       string `json:"location_b"`
	DurationMinutes int    `json:"duration_minutes"`
}

type CarrierRequest struct {
	CarrierID     string `json:"carrier_id"`
	Capacity      int    `json:"capacity"`
	StartLocation string `json:"start_location"`
}

type PackageRequest struct {
	PackageID   string `json:"package_id"`
	Weight      int    `json:"weight"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// SimulationRequest carries an inline network. An empty body runs the stored network.
type SimulationRequest struct {
	Locations []string         `json:"locations"`
	Routes    []RouteRequest   `json:"routes"`
	Carriers  []CarrierRequest `json:"carriers"`
	Packages  []PackageRequest `json:"packages"`
}

type EventResponse struct {
	Timestamp int      `json:"timestamp"`
	CarrierID string   `json:"carrier_id"`
	From      string   `json:"from"`
	Loaded    []string `json:"loaded"`
	To        string   `json:"to"`
	Unloaded  []string `json:"unloaded"`
}

type CarrierSummaryResponse struct {
	CarrierID string   `json:"carrier_id"`
	Location  string   `json:"location"`
	Time      int      `json:"time"`
	Delivered []string `json:"delivered"`
}

type StrandedResponse struct {
	PackageID string `json:"package_id"`
	Location  string `json:"location"`
	State     string `json:"state"`
}

type SimulationResponse struct {
	RunID       string                   `json:"run_id"`
	Fingerprint string                   `json:"fingerprint"`
	CreatedAt   time.Time                `json:"created_at"`
	Events      []EventResponse          `json:"events"`
	Carriers    []CarrierSummaryResponse `json:"carriers"`
	Stranded    []StrandedResponse       `json:"stranded"`
}
