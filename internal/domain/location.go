package domain

// Opaque identifier of a node in the route network.
type Location string
