package domain

import "fmt"

// Capacity-limited mobile agent ("train") moving packages over the network.
// Time is the carrier's local simulated clock in seconds.
type Carrier struct {
	CarrierID string
	Capacity  int
	Location  Location
	Time      int
	Packages  []*Package
}

func NewCarrier(id string, capacity int, start Location) *Carrier {
	return &Carrier{
		CarrierID: id,
		Capacity:  capacity,
		Location:  start,
	}
}

// Sum of the weights of all held packages.
func (c *Carrier) Load() int {
	total := 0
	for _, p := range c.Packages {
		total += p.Weight
	}
	return total
}

// CanFit reports whether pkg can be added without exceeding capacity.
func (c *Carrier) CanFit(pkg *Package) bool {
	return c.Load()+pkg.Weight <= c.Capacity
}

// Pick up a package lying at the carrier's current location.
func (c *Carrier) Pick(pkg *Package) error {
	if !pkg.Unclaimed() || pkg.Current.Location != c.Location {
		return fmt.Errorf("pick package: package %s is not waiting at %s", pkg.PackageID, c.Location)
	}
	if !c.CanFit(pkg) {
		return fmt.Errorf("pick package: carrier %s cannot fit package %s (load=%d weight=%d capacity=%d)",
			c.CarrierID, pkg.PackageID, c.Load(), pkg.Weight, c.Capacity)
	}

	c.Packages = append(c.Packages, pkg)
	pkg.Current = PackageLocation{State: InTransit, Location: c.Location, CarrierID: c.CarrierID}
	return nil
}

// Move the carrier (and everything it holds) to next, advancing its clock.
func (c *Carrier) Move(next Location, duration int) {
	c.Location = next
	c.Time += duration
	for _, p := range c.Packages {
		p.Current.Location = next
	}
}

// Drop every held package whose destination is the current location.
// Returns the delivered packages in load order.
func (c *Carrier) DropArrived() []*Package {
	var dropped []*Package
	kept := c.Packages[:0]
	for _, p := range c.Packages {
		if p.Destination == c.Location {
			p.Current = PackageLocation{State: Delivered, Location: c.Location}
			dropped = append(dropped, p)
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(c.Packages); i++ {
		c.Packages[i] = nil
	}
	c.Packages = kept
	return dropped
}

// IDs of held packages in load order.
func (c *Carrier) PackageIDs() []string {
	ids := make([]string, 0, len(c.Packages))
	for _, p := range c.Packages {
		ids = append(ids, p.PackageID)
	}
	return ids
}
