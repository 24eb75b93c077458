package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// ParseCommandDescription splits "<command> <id>: <description>".
// Lines without a command, id or colon are rejected.
func ParseCommandDescription(line string) (CommandDescription, bool) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return CommandDescription{}, false
	}
	head := strings.TrimSpace(line[:colon])
	command, id, ok := strings.Cut(head, " ")
	if !ok {
		return CommandDescription{}, false
	}
	id = strings.TrimSpace(id)
	if command == "" || id == "" {
		return CommandDescription{}, false
	}
	return CommandDescription{
		Command:     command,
		ID:          id,
		Description: line[colon+1:],
	}, true
}

// ParseCoordinates parses "lat, lng". A string without a comma yields NaN coordinates.
func ParseCoordinates(s string) geo.Coordinates {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return geo.Coordinates{Lat: math.NaN(), Lng: math.NaN()}
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		lat = math.NaN()
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		lng = math.NaN()
	}
	return geo.Coordinates{Lat: lat, Lng: lng}
}

// ParseStopDescription splits a stop description into the coordinate part and the distance list
func ParseStopDescription(s string) (coords string, distances string) {
	first := strings.IndexByte(s, ',')
	if first < 0 {
		return s, ""
	}
	second := strings.IndexByte(s[first+1:], ',')
	if second < 0 {
		return s, ""
	}
	second += first + 1
	return s[:second], s[second+1:]
}

// ParseDistances parses "3900m to Marushkino, 100m to Rasskazovka"
func ParseDistances(s string) ([]NeighborDistance, error) {
	var out []NeighborDistance
	for _, part := range split(s, ',') {
		dist, stop, ok := strings.Cut(part, " to ")
		if !ok {
			return nil, fmt.Errorf("malformed distance %q", part)
		}
		dist = strings.TrimSuffix(strings.TrimSpace(dist), "m")
		meters, err := strconv.Atoi(dist)
		if err != nil {
			return nil, fmt.Errorf("malformed distance %q: %w", part, err)
		}
		out = append(out, NeighborDistance{Stop: strings.TrimSpace(stop), Meters: meters})
	}
	return out, nil
}

// ParseRoute parses "A > B > A" (round trip) or "A - B - C" (one way).
// Stop names are returned as written; see BusDefinition.Route for expansion.
func ParseRoute(s string) (stops []string, roundTrip bool) {
	if strings.Contains(s, ">") {
		return split(s, '>'), true
	}
	return split(s, '-'), false
}

// split cuts s at sep and drops empty trimmed parts
func split(s string, sep byte) []string {
	var out []string
	for _, p := range strings.Split(s, string(sep)) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
