package catalogue

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// GetBusStat walks the route once and computes its statistics.
// Curvature is 1.0 when the route has no geographic extent.
// Handles not registered in this catalogue are skipped.
func (c *Catalogue) GetBusStat(bus Bus) BusStat {
	stat := BusStat{Curvature: 1}
	seen := make(map[StopID]struct{}, len(bus.Stops))
	geoLength := 0.0
	prev := StopID(-1)
	for _, cur := range bus.Stops {
		if !c.hasStop(cur) {
			continue
		}
		stat.TotalStops++
		if _, ok := seen[cur]; !ok {
			seen[cur] = struct{}{}
			stat.UniqueStops++
		}
		if prev >= 0 {
			stat.RouteLength += c.distance(prev, cur)
			geoLength += geo.ComputeDistance(c.stops[prev].Coordinates, c.stops[cur].Coordinates)
		}
		prev = cur
	}
	if geoLength != 0 {
		stat.Curvature = float64(stat.RouteLength) / geoLength
	}
	return stat
}
