package input

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

// GTFSOptions controls how a GTFS static feed becomes a batch
type GTFSOptions struct {
	// DistanceScale converts shape_dist_traveled units to metres (1 for metres, 1000 for km).
	// Zero means 1.
	DistanceScale float64
}

// gtfsFeed holds the columns of a static feed the catalogue needs
type gtfsFeed struct {
	stopName  map[string]string     // stop_id -> stop_name
	stopCoord map[string][2]float64 // stop_id -> [lat,lon]
	stopOrder []string              // stop_ids in file order
	routeName map[string]string     // route_id -> short name (or id)
	routeIDs  []string              // route_ids in file order
	tripRoute map[string]string     // trip_id -> route_id
	tripStops map[string][]gtfsCall // trip_id -> calls sorted by stop_sequence
}

type gtfsCall struct {
	stopID  string
	seq     int
	dist    float64
	hasDist bool
}

// LoadGTFSZip reads stops, routes, trips and stop_times from a GTFS static zip.
// Each route becomes one bus following its longest trip, stored verbatim.
// Stop names shared by several stop_ids are disambiguated with the id.
// Road distances come from shape_dist_traveled when the feed has it.
func LoadGTFSZip(path string, opts GTFSOptions) (Batch, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return Batch{}, err
	}
	defer func() { _ = zr.Close() }()

	feed := &gtfsFeed{
		stopName:  map[string]string{},
		stopCoord: map[string][2]float64{},
		routeName: map[string]string{},
		tripRoute: map[string]string{},
		tripStops: map[string][]gtfsCall{},
	}
	for _, f := range zr.File {
		switch strings.ToLower(f.Name) {
		case "stops.txt", "routes.txt", "trips.txt", "stop_times.txt":
			if err := feed.consumeCSV(f); err != nil {
				return Batch{}, fmt.Errorf("%s: %w", f.Name, err)
			}
		}
	}
	b := feed.batch(opts)
	glog.Infof("gtfs: %s: %d stops, %d routes", path, len(b.Stops), len(b.Buses))
	return b, nil
}

func (g *gtfsFeed) consumeCSV(f *zip.File) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	head, err := csvr.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rows, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	switch strings.ToLower(f.Name) {
	case "stops.txt":
		sID, sN, sLat, sLon := idx("stop_id"), idx("stop_name"), idx("stop_lat"), idx("stop_lon")
		for _, row := range rows {
			id := cell(row, sID)
			if id == "" {
				continue
			}
			lat, err1 := strconv.ParseFloat(cell(row, sLat), 64)
			lon, err2 := strconv.ParseFloat(cell(row, sLon), 64)
			if err1 != nil || err2 != nil {
				// stations without coordinates cannot be measured
				continue
			}
			name := cell(row, sN)
			if name == "" {
				name = id
			}
			g.stopName[id] = name
			g.stopCoord[id] = [2]float64{lat, lon}
			g.stopOrder = append(g.stopOrder, id)
		}
	case "routes.txt":
		rID, rSN := idx("route_id"), idx("route_short_name")
		for _, row := range rows {
			id := cell(row, rID)
			if id == "" {
				continue
			}
			name := cell(row, rSN)
			if name == "" {
				name = id
			}
			g.routeName[id] = name
			g.routeIDs = append(g.routeIDs, id)
		}
	case "trips.txt":
		rID, tID := idx("route_id"), idx("trip_id")
		for _, row := range rows {
			if t := cell(row, tID); t != "" {
				g.tripRoute[t] = cell(row, rID)
			}
		}
	case "stop_times.txt":
		tID, sID, sq, sd := idx("trip_id"), idx("stop_id"), idx("stop_sequence"), idx("shape_dist_traveled")
		if tID < 0 || sID < 0 || sq < 0 {
			return nil
		}
		for _, row := range rows {
			seq, err := strconv.Atoi(cell(row, sq))
			if err != nil {
				continue
			}
			call := gtfsCall{stopID: cell(row, sID), seq: seq}
			if d, err := strconv.ParseFloat(cell(row, sd), 64); err == nil {
				call.dist, call.hasDist = d, true
			}
			trip := cell(row, tID)
			g.tripStops[trip] = append(g.tripStops[trip], call)
		}
		for _, calls := range g.tripStops {
			sort.Slice(calls, func(i, j int) bool { return calls[i].seq < calls[j].seq })
		}
	}
	return nil
}

func (g *gtfsFeed) batch(opts GTFSOptions) Batch {
	scale := opts.DistanceScale
	if scale == 0 {
		scale = 1
	}

	nameCount := map[string]int{}
	for _, id := range g.stopOrder {
		nameCount[g.stopName[id]]++
	}
	display := func(id string) string {
		if n := g.stopName[id]; nameCount[n] == 1 {
			return n
		}
		return fmt.Sprintf("%s [%s]", g.stopName[id], id)
	}

	var b Batch
	stopIdx := make(map[string]int, len(g.stopOrder))
	for _, id := range g.stopOrder {
		c := g.stopCoord[id]
		stopIdx[id] = len(b.Stops)
		b.Stops = append(b.Stops, StopDefinition{Name: display(id), Lat: c[0], Lng: c[1]})
	}

	// longest trip per route, ties broken by smallest trip_id
	best := map[string]string{}
	for trip, route := range g.tripRoute {
		cur, ok := best[route]
		if !ok || len(g.tripStops[trip]) > len(g.tripStops[cur]) ||
			(len(g.tripStops[trip]) == len(g.tripStops[cur]) && trip < cur) {
			best[route] = trip
		}
	}

	for _, routeID := range g.routeIDs {
		trip, ok := best[routeID]
		if !ok {
			continue
		}
		calls := g.tripStops[trip]
		stops := make([]string, 0, len(calls))
		for i, call := range calls {
			if _, known := stopIdx[call.stopID]; !known {
				// keep the dangling reference; Validate reports it
				stops = append(stops, call.stopID)
				continue
			}
			stops = append(stops, display(call.stopID))
			if i == 0 {
				continue
			}
			prev := calls[i-1]
			pi, known := stopIdx[prev.stopID]
			if !known || !prev.hasDist || !call.hasDist {
				continue
			}
			if m := int(math.Round((call.dist - prev.dist) * scale)); m > 0 {
				b.Stops[pi].Distances = append(b.Stops[pi].Distances, NeighborDistance{Stop: display(call.stopID), Meters: m})
			}
		}
		if len(stops) == 0 {
			continue
		}
		b.Buses = append(b.Buses, BusDefinition{Name: g.routeName[routeID], Stops: stops, RoundTrip: true})
	}
	return b
}
