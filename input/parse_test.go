package input

import (
	"math"
	"reflect"
	"testing"
)

func TestParseCommandDescription(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   CommandDescription
		wantOK bool
	}{
		{
			name:   "stop",
			line:   "Stop Tolstopaltsevo: 55.611087, 37.20829",
			want:   CommandDescription{Command: "Stop", ID: "Tolstopaltsevo", Description: " 55.611087, 37.20829"},
			wantOK: true,
		},
		{
			name:   "name with spaces",
			line:   "Stop Biryulyovo Zapadnoye: 55.574371, 37.6517",
			want:   CommandDescription{Command: "Stop", ID: "Biryulyovo Zapadnoye", Description: " 55.574371, 37.6517"},
			wantOK: true,
		},
		{
			name:   "leading spaces",
			line:   "  Bus   750: A - B",
			want:   CommandDescription{Command: "Bus", ID: "750", Description: " A - B"},
			wantOK: true,
		},
		{name: "no colon", line: "Stop A 1, 2"},
		{name: "no id", line: "Stop: 1, 2"},
		{name: "empty", line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCommandDescription(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseCoordinates(t *testing.T) {
	c := ParseCoordinates(" 55.611087,  37.20829")
	if c.Lat != 55.611087 || c.Lng != 37.20829 {
		t.Errorf("got %+v", c)
	}

	bad := ParseCoordinates("55.611087")
	if !math.IsNaN(bad.Lat) || !math.IsNaN(bad.Lng) {
		t.Errorf("Expected NaN coordinates, got %+v", bad)
	}
}

func TestParseStopDescription(t *testing.T) {
	coords, dists := ParseStopDescription(" 55.6, 37.2, 3900m to Marushkino, 100m to A")
	if coords != " 55.6, 37.2" {
		t.Errorf("coords = %q", coords)
	}
	if dists != " 3900m to Marushkino, 100m to A" {
		t.Errorf("distances = %q", dists)
	}

	coords, dists = ParseStopDescription(" 55.6, 37.2")
	if coords != " 55.6, 37.2" || dists != "" {
		t.Errorf("got %q, %q", coords, dists)
	}
}

func TestParseDistances(t *testing.T) {
	got, err := ParseDistances(" 7500m to Rossoshanskaya ulitsa, 1800m to Biryusinka")
	if err != nil {
		t.Fatal(err)
	}
	want := []NeighborDistance{
		{Stop: "Rossoshanskaya ulitsa", Meters: 7500},
		{Stop: "Biryusinka", Meters: 1800},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if _, err := ParseDistances("lots to A"); err == nil {
		t.Error("Expected error for non-numeric distance")
	}
	if _, err := ParseDistances("100m A"); err == nil {
		t.Error("Expected error for missing 'to'")
	}
}

func TestParseRoute(t *testing.T) {
	stops, round := ParseRoute(" A > B > C > A")
	if !round || !reflect.DeepEqual(stops, []string{"A", "B", "C", "A"}) {
		t.Errorf("round trip: %v %v", stops, round)
	}

	stops, round = ParseRoute(" Tolstopaltsevo - Marushkino - Rasskazovka")
	if round || !reflect.DeepEqual(stops, []string{"Tolstopaltsevo", "Marushkino", "Rasskazovka"}) {
		t.Errorf("one way: %v %v", stops, round)
	}
}

func TestBusDefinition_Route(t *testing.T) {
	tests := []struct {
		name string
		def  BusDefinition
		want []string
	}{
		{"round trip", BusDefinition{Stops: []string{"A", "B", "C", "A"}, RoundTrip: true}, []string{"A", "B", "C", "A"}},
		{"one way", BusDefinition{Stops: []string{"A", "B", "C"}}, []string{"A", "B", "C", "B", "A"}},
		{"one way single stop", BusDefinition{Stops: []string{"A"}}, []string{"A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.def.Route(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Route() = %v, want %v", got, tt.want)
			}
		})
	}
}
