package input

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/golang/glog"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

var validate = validator.New()

// Validate checks field constraints and that every referenced stop is defined
// either in the batch or in the catalogue.
func Validate(cat *catalogue.Catalogue, b Batch) error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("invalid batch: %w", err)
	}

	defined := make(map[string]struct{}, len(b.Stops))
	for _, s := range b.Stops {
		defined[s.Name] = struct{}{}
	}
	known := func(name string) bool {
		if _, ok := defined[name]; ok {
			return true
		}
		_, ok := cat.GetStop(name)
		return ok
	}

	var errs []error
	for _, s := range b.Stops {
		for _, d := range s.Distances {
			if !known(d.Stop) {
				errs = append(errs, fmt.Errorf("stop %s: distance to %q: %w", s.Name, d.Stop, catalogue.ErrUnknownStop))
			}
		}
	}
	for _, bus := range b.Buses {
		for _, name := range bus.Stops {
			if !known(name) {
				errs = append(errs, fmt.Errorf("bus %s: stop %q: %w", bus.Name, name, catalogue.ErrUnknownStop))
			}
		}
	}
	return errors.Join(errs...)
}

// Apply validates the batch and ingests it: stops, then distances, then buses.
// An invalid batch leaves the catalogue untouched.
func Apply(cat *catalogue.Catalogue, b Batch) error {
	if err := Validate(cat, b); err != nil {
		return err
	}

	for _, s := range b.Stops {
		cat.AddStop(s.Name, geo.Coordinates{Lat: s.Lat, Lng: s.Lng})
	}
	distances := 0
	for _, s := range b.Stops {
		for _, d := range s.Distances {
			if err := cat.AddDistance(s.Name, d.Stop, d.Meters); err != nil {
				return err
			}
			distances++
		}
	}
	for _, bus := range b.Buses {
		if _, err := cat.AddBusByNames(bus.Name, bus.Route()); err != nil {
			return err
		}
	}

	glog.Infof("input: applied %d stops, %d distances, %d buses", len(b.Stops), distances, len(b.Buses))
	return nil
}
