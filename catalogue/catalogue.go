package catalogue

import (
	"fmt"
	"slices"
	"strings"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// Catalogue stores stops, buses and road distances in memory for fast lookups
type Catalogue struct {
	stops      []Stop             // arena, indexed by StopID
	buses      []Bus              // arena, indexed by BusID
	stopByName map[string]StopID  // stop name -> handle
	busByName  map[string]BusID   // bus name -> handle
	busesAt    map[StopID][]BusID // stop -> buses through it, sorted by bus name
	distances  map[stopPair]int   // (from, to) -> metres
}

// New creates an empty catalogue
func New() *Catalogue {
	return &Catalogue{
		stopByName: map[string]StopID{},
		busByName:  map[string]BusID{},
		busesAt:    map[StopID][]BusID{},
		distances:  map[stopPair]int{},
	}
}

// AddStop registers a stop and returns its handle.
// Re-adding a known name overwrites its coordinates and keeps the handle.
func (c *Catalogue) AddStop(name string, coords geo.Coordinates) StopID {
	if id, ok := c.stopByName[name]; ok {
		c.stops[id].Coordinates = coords
		return id
	}
	id := StopID(len(c.stops))
	c.stops = append(c.stops, Stop{ID: id, Name: name, Coordinates: coords})
	c.stopByName[name] = id
	return id
}

// AddBus registers a route over already registered stops.
// Re-adding a known name replaces its route.
func (c *Catalogue) AddBus(name string, stops []StopID) (BusID, error) {
	for _, s := range stops {
		if !c.hasStop(s) {
			return 0, fmt.Errorf("bus %s: stop handle %d: %w", name, s, ErrUnknownStop)
		}
	}
	route := slices.Clone(stops)

	id, ok := c.busByName[name]
	if ok {
		c.unindexBus(id)
		c.buses[id].Stops = route
	} else {
		id = BusID(len(c.buses))
		c.buses = append(c.buses, Bus{ID: id, Name: name, Stops: route})
		c.busByName[name] = id
	}
	c.indexBus(id)
	return id, nil
}

// AddBusByNames resolves stop names and registers the route
func (c *Catalogue) AddBusByNames(name string, stopNames []string) (BusID, error) {
	stops := make([]StopID, 0, len(stopNames))
	for _, sn := range stopNames {
		id, ok := c.stopByName[sn]
		if !ok {
			return 0, fmt.Errorf("bus %s: stop %q: %w", name, sn, ErrUnknownStop)
		}
		stops = append(stops, id)
	}
	return c.AddBus(name, stops)
}

// AddDistance records the road distance from one stop to another.
// The reverse direction defaults to the same value unless it was already set.
func (c *Catalogue) AddDistance(from, to string, meters int) error {
	fromID, ok := c.stopByName[from]
	if !ok {
		return fmt.Errorf("distance %s -> %s: stop %q: %w", from, to, from, ErrUnknownStop)
	}
	toID, ok := c.stopByName[to]
	if !ok {
		return fmt.Errorf("distance %s -> %s: stop %q: %w", from, to, to, ErrUnknownStop)
	}
	c.distances[stopPair{fromID, toID}] = meters
	reverse := stopPair{toID, fromID}
	if _, set := c.distances[reverse]; !set {
		c.distances[reverse] = meters
	}
	return nil
}

// GetStop returns the stop with the given name
func (c *Catalogue) GetStop(name string) (Stop, bool) {
	id, ok := c.stopByName[name]
	if !ok {
		return Stop{}, false
	}
	return c.stops[id], true
}

// GetBus returns the bus with the given name.
// The returned Stops slice is shared with the catalogue and must not be modified.
func (c *Catalogue) GetBus(name string) (Bus, bool) {
	id, ok := c.busByName[name]
	if !ok {
		return Bus{}, false
	}
	return c.buses[id], true
}

// Stop returns the stop behind a handle
func (c *Catalogue) Stop(id StopID) (Stop, bool) {
	if !c.hasStop(id) {
		return Stop{}, false
	}
	return c.stops[id], true
}

// GetBusesByStop returns the buses passing through a stop sorted by name.
// Unknown stops and stops without buses both yield an empty result.
func (c *Catalogue) GetBusesByStop(name string) []Bus {
	id, ok := c.stopByName[name]
	if !ok {
		return nil
	}
	ids := c.busesAt[id]
	out := make([]Bus, 0, len(ids))
	for _, b := range ids {
		out = append(out, c.buses[b])
	}
	return out
}

// GetDistance returns the recorded road distance from one stop to another, or 0
func (c *Catalogue) GetDistance(from, to string) int {
	fromID, ok := c.stopByName[from]
	if !ok {
		return 0
	}
	toID, ok := c.stopByName[to]
	if !ok {
		return 0
	}
	return c.distance(fromID, toID)
}

// StopCount returns the number of registered stops
func (c *Catalogue) StopCount() int { return len(c.stops) }

// BusCount returns the number of registered buses
func (c *Catalogue) BusCount() int { return len(c.buses) }

// StopNames returns all stop names sorted
func (c *Catalogue) StopNames() []string {
	names := make([]string, 0, len(c.stops))
	for _, s := range c.stops {
		names = append(names, s.Name)
	}
	slices.Sort(names)
	return names
}

// BusNames returns all bus names sorted
func (c *Catalogue) BusNames() []string {
	names := make([]string, 0, len(c.buses))
	for _, b := range c.buses {
		names = append(names, b.Name)
	}
	slices.Sort(names)
	return names
}

func (c *Catalogue) hasStop(id StopID) bool {
	return id >= 0 && int(id) < len(c.stops)
}

func (c *Catalogue) distance(from, to StopID) int {
	return c.distances[stopPair{from, to}]
}

func (c *Catalogue) indexBus(id BusID) {
	name := c.buses[id].Name
	for _, s := range c.buses[id].Stops {
		list := c.busesAt[s]
		pos, found := slices.BinarySearchFunc(list, name, func(b BusID, n string) int {
			return strings.Compare(c.buses[b].Name, n)
		})
		if found {
			continue
		}
		c.busesAt[s] = slices.Insert(list, pos, id)
	}
}

func (c *Catalogue) unindexBus(id BusID) {
	for _, s := range c.buses[id].Stops {
		c.busesAt[s] = slices.DeleteFunc(c.busesAt[s], func(b BusID) bool { return b == id })
	}
}
