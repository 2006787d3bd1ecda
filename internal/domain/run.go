package domain

import "time"

// Final state of one carrier after the scheduler finished with it.
type CarrierSummary struct {
	CarrierID string
	Location  Location
	Time      int
	Delivered []string
}

// Package left undelivered when the simulation ended.
type StrandedPackage struct {
	PackageID string
	Location  Location
	State     PackageState
}

// Persisted outcome of one simulation.
type SimulationRun struct {
	RunID       string
	Fingerprint string
	CreatedAt   time.Time
	Events      []Event
	Carriers    []CarrierSummary
	Stranded    []StrandedPackage
}
