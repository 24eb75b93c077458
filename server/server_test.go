package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newTestServerWith(t, config.ServerConfig{Port: config.DefaultPort, AllowedOrigins: []string{"http://localhost:5173"}})
}

func newTestServerWith(t *testing.T, cfg config.ServerConfig) *httptest.Server {
	t.Helper()
	c := catalogue.New()
	tol := c.AddStop("Tolstopaltsevo", geo.Coordinates{Lat: 55.611087, Lng: 37.20829})
	mar := c.AddStop("Marushkino", geo.Coordinates{Lat: 55.595884, Lng: 37.209755})
	c.AddStop("Biryulyovo Zapadnoye", geo.Coordinates{Lat: 55.574371, Lng: 37.6517})
	if err := c.AddDistance("Tolstopaltsevo", "Marushkino", 3900); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddBus("256", []catalogue.StopID{tol, mar, tol}); err != nil {
		t.Fatal(err)
	}

	srv := New(c, cfg)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp, string(body)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var h healthResponse
	if err := json.Unmarshal([]byte(body), &h); err != nil {
		t.Fatal(err)
	}
	if h.Status != "ok" || h.Stops != 3 || h.Buses != 1 {
		t.Errorf("health = %+v", h)
	}
	if len(h.CatalogueID) != 36 {
		t.Errorf("catalogue id should be a UUID, got %q", h.CatalogueID)
	}
}

func TestBusEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/buses/256")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatal(err)
	}
	if got["stop_count"] != float64(3) || got["unique_stop_count"] != float64(2) || got["route_length"] != float64(7800) {
		t.Errorf("body = %s", body)
	}

	resp, body = get(t, ts.URL+"/api/buses/751?format=text")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if body != "Bus 751: not found\n" {
		t.Errorf("body = %q", body)
	}
}

func TestStopEndpoint(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/api/stops/Marushkino?format=text", http.StatusOK, "Stop Marushkino: buses 256\n"},
		{"/api/stops/Biryulyovo%20Zapadnoye?format=text", http.StatusOK, "Stop Biryulyovo Zapadnoye: no buses\n"},
		{"/api/stops/Samara?format=text", http.StatusNotFound, "Stop Samara: not found\n"},
		{"/api/stops/Samara", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantBody == "" {
				// JSON request IDs depend on request order.
				if !strings.Contains(body, `"error_message":"not found"`) {
					t.Errorf("body = %q", body)
				}
				return
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestNameLists(t *testing.T) {
	ts := newTestServer(t)

	_, body := get(t, ts.URL+"/api/stops")
	var names namesResponse
	if err := json.Unmarshal([]byte(body), &names); err != nil {
		t.Fatal(err)
	}
	want := []string{"Biryulyovo Zapadnoye", "Marushkino", "Tolstopaltsevo"}
	if len(names.Names) != len(want) {
		t.Fatalf("names = %v", names.Names)
	}
	for i := range want {
		if names.Names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names.Names[i], want[i])
		}
	}

	_, body = get(t, ts.URL+"/api/buses")
	if !strings.Contains(body, `"256"`) {
		t.Errorf("bus list = %s", body)
	}
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestShutdownWithoutStart(t *testing.T) {
	srv := New(catalogue.New(), config.ServerConfig{Port: config.DefaultPort})
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown before Start should be a no-op, got %v", err)
	}
}

func TestAnswerCache(t *testing.T) {
	ts := newTestServerWith(t, config.ServerConfig{Port: config.DefaultPort, AnswerCacheSize: 8})

	var ids []float64
	for i := 0; i < 2; i++ {
		_, body := get(t, ts.URL+"/api/buses/256")
		var got map[string]any
		if err := json.Unmarshal([]byte(body), &got); err != nil {
			t.Fatal(err)
		}
		if got["route_length"] != float64(7800) {
			t.Errorf("cached answer changed: %s", body)
		}
		ids = append(ids, got["request_id"].(float64))
	}
	if ids[0] != 1 || ids[1] != 2 {
		t.Errorf("request ids = %v, want [1 2]", ids)
	}

	_, body := get(t, ts.URL+"/api/health")
	var h healthResponse
	if err := json.Unmarshal([]byte(body), &h); err != nil {
		t.Fatal(err)
	}
	if h.CacheHits != 1 {
		t.Errorf("cache hits = %d, want 1", h.CacheHits)
	}
	t.Logf("✓ Second lookup served from cache")
}

func TestNameParamDecoding(t *testing.T) {
	c := catalogue.New()
	c.AddStop("Depot %20 East", geo.Coordinates{Lat: 55.6, Lng: 37.2})
	c.AddStop("Park/Ride", geo.Coordinates{Lat: 55.5, Lng: 37.3})
	ts := httptest.NewServer(New(c, config.ServerConfig{Port: config.DefaultPort}).Handler())
	t.Cleanup(ts.Close)

	tests := []struct {
		path     string
		wantBody string
	}{
		{"/api/stops/Depot%20%2520%20East?format=text", "Stop Depot %20 East: no buses\n"},
		{"/api/stops/Park%2FRide?format=text", "Stop Park/Ride: no buses\n"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != http.StatusOK {
				t.Errorf("status = %d, want 200", resp.StatusCode)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
