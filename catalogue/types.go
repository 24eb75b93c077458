package catalogue

import (
	"errors"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// ErrUnknownStop is returned when a route or distance references a stop that was never added
var ErrUnknownStop = errors.New("unknown stop")

// StopID is a stable handle to a stop owned by a Catalogue
type StopID int

// BusID is a stable handle to a bus owned by a Catalogue
type BusID int

// Stop is a named point with coordinates
type Stop struct {
	ID          StopID
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named ordered traversal of stops.
// Stops already encodes direction: a one-way route holds both legs.
type Bus struct {
	ID    BusID
	Name  string
	Stops []StopID
}

// BusStat holds statistics derived from a bus route
type BusStat struct {
	TotalStops  int
	UniqueStops int
	RouteLength int     // metres of road
	Curvature   float64 // road length / great-circle length
}

type stopPair struct {
	from StopID
	to   StopID
}
