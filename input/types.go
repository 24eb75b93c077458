package input

import (
	"slices"
)

// CommandDescription is one parsed "<command> <id>: <description>" line
type CommandDescription struct {
	Command     string
	ID          string
	Description string
}

// NeighborDistance is a road distance from the defining stop to a neighbor
type NeighborDistance struct {
	Stop   string `yaml:"stop" validate:"required"`
	Meters int    `yaml:"meters" validate:"gte=0"`
}

// StopDefinition describes a stop and the road distances leaving it
type StopDefinition struct {
	Name      string             `yaml:"name" validate:"required"`
	Lat       float64            `yaml:"lat" validate:"gte=-90,lte=90"`
	Lng       float64            `yaml:"lng" validate:"gte=-180,lte=180"`
	Distances []NeighborDistance `yaml:"road_distances" validate:"dive"`
}

// BusDefinition describes a route by stop names as written in the input.
// A round trip lists its origin again at the end.
type BusDefinition struct {
	Name      string   `yaml:"name" validate:"required"`
	Stops     []string `yaml:"stops" validate:"min=1,dive,required"`
	RoundTrip bool     `yaml:"is_roundtrip"`
}

// Route returns the traversed stop sequence.
// A one-way route is expanded to the forward leg followed by the way back.
func (b BusDefinition) Route() []string {
	if b.RoundTrip || len(b.Stops) < 2 {
		return slices.Clone(b.Stops)
	}
	route := make([]string, 0, 2*len(b.Stops)-1)
	route = append(route, b.Stops...)
	for i := len(b.Stops) - 2; i >= 0; i-- {
		route = append(route, b.Stops[i])
	}
	return route
}

// Batch is a full set of base records plus the stat requests to answer
type Batch struct {
	Stops    []StopDefinition `yaml:"stops" validate:"dive"`
	Buses    []BusDefinition  `yaml:"buses" validate:"dive"`
	Requests []string         `yaml:"requests"`
}
