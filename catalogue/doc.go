/*
Package catalogue provides the in-memory transit catalogue: stops, bus routes,
directed road distances and the route statistics derived from them.

The catalogue is data-source agnostic. It accepts already-structured stops and
routes; parsing the command language lives in the input package.

# Basic Usage

	cat := catalogue.New()
	a := cat.AddStop("Tolstopaltsevo", geo.Coordinates{Lat: 55.611087, Lng: 37.20829})
	b := cat.AddStop("Marushkino", geo.Coordinates{Lat: 55.595884, Lng: 37.209755})
	_ = cat.AddDistance("Tolstopaltsevo", "Marushkino", 3900)
	_, _ = cat.AddBus("256", []catalogue.StopID{a, b, a})

	if bus, ok := cat.GetBus("256"); ok {
	    stat := cat.GetBusStat(bus)
	    fmt.Println(stat.RouteLength) // 7800
	}

# Handles

Stops and buses live in arenas owned by the catalogue. Every cross-reference
(bus to stop, index to stop or bus, distance key) is a StopID or BusID, a
stable index into the arena that never changes once issued.

# Ordering

Stops, distances and buses may be added in any order the handles allow, but
statistics read distances at query time. Add all distances before querying.

# Thread safety

A Catalogue is not safe for concurrent mutation. Once building is complete it
is safe for any number of concurrent readers.
*/
package catalogue
