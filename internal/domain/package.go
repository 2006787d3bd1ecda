package domain

import "fmt"

type PackageState int

const (
	// Sitting on the ground at Location, waiting for a carrier.
	AtLocation PackageState = iota
	// Held by CarrierID; Location tracks the carrier's current stop.
	InTransit
	// Unloaded at its destination. Terminal.
	Delivered
)

func (s PackageState) String() string {
	switch s {
	case AtLocation:
		return "at_location"
	case InTransit:
		return "in_transit"
	case Delivered:
		return "delivered"
	default:
		return fmt.Sprintf("PackageState(%d)", int(s))
	}
}

// Tagged position of a package.
type PackageLocation struct {
	State     PackageState
	Location  Location
	CarrierID string
}

// A weighted item moving from Origin to Destination.
type Package struct {
	PackageID   string
	Weight      int
	Origin      Location
	Destination Location
	Current     PackageLocation
}

func NewPackage(id string, weight int, origin, destination Location) *Package {
	return &Package{
		PackageID:   id,
		Weight:      weight,
		Origin:      origin,
		Destination: destination,
		Current:     PackageLocation{State: AtLocation, Location: origin},
	}
}

// Unclaimed reports whether the package is on the ground waiting for pickup.
func (p *Package) Unclaimed() bool { return p.Current.State == AtLocation }

func (p *Package) IsDelivered() bool { return p.Current.State == Delivered }
