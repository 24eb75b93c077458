package stat

import (
	"strings"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
)

// Kind is the request type
type Kind string

const (
	KindBus  Kind = "Bus"  // route statistics
	KindStop Kind = "Stop" // buses through a stop
)

// QueryError reports a malformed request
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// Request is a single stat query
type Request struct {
	ID   int
	Kind Kind
	Name string
}

// Response is the answer to a Request.
// Stat is set for found buses, Buses (sorted names) for found stops.
type Response struct {
	Request Request
	Found   bool
	Stat    catalogue.BusStat
	Buses   []string
}

// Source is the read side of a catalogue
type Source interface {
	GetBus(name string) (catalogue.Bus, bool)
	GetBusStat(bus catalogue.Bus) catalogue.BusStat
	GetStop(name string) (catalogue.Stop, bool)
	GetBusesByStop(name string) []catalogue.Bus
}

// ParseRequest parses "Bus <name>" or "Stop <name>"
func ParseRequest(line string) (Request, error) {
	line = strings.TrimSpace(line)
	command, name, ok := strings.Cut(line, " ")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Request{}, &QueryError{Msg: "Malformed request: " + line}
	}
	switch Kind(command) {
	case KindBus, KindStop:
		return Request{Kind: Kind(command), Name: name}, nil
	default:
		return Request{}, &QueryError{Msg: "Unsupported request type: " + command}
	}
}

// Execute resolves a request against the catalogue
func Execute(src Source, req Request) Response {
	res := Response{Request: req}
	switch req.Kind {
	case KindBus:
		bus, ok := src.GetBus(req.Name)
		if !ok {
			return res
		}
		res.Found = true
		res.Stat = src.GetBusStat(bus)
	case KindStop:
		if _, ok := src.GetStop(req.Name); !ok {
			return res
		}
		res.Found = true
		buses := src.GetBusesByStop(req.Name)
		res.Buses = make([]string, 0, len(buses))
		for _, b := range buses {
			res.Buses = append(res.Buses, b.Name)
		}
	}
	return res
}

// ExecuteAll parses and answers request lines in order. Request IDs are
// assigned from 1 by position. Malformed lines are returned as errors and
// produce no response.
func ExecuteAll(src Source, lines []string) ([]Response, []error) {
	out := make([]Response, 0, len(lines))
	var errs []error
	for i, line := range lines {
		req, err := ParseRequest(line)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		req.ID = i + 1
		out = append(out, Execute(src, req))
	}
	return out, errs
}
