package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/theoremus-urban-solutions/transport-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transport-catalogue/stat"
)

type healthResponse struct {
	Status      string    `json:"status"`
	CatalogueID string    `json:"catalogue_id"`
	Stops       int       `json:"stops"`
	Buses       int       `json:"buses"`
	StartedAt   time.Time `json:"started_at"`
	Requests    int64     `json:"requests"`
	CacheHits   uint64    `json:"cache_hits"`
}

type namesResponse struct {
	Names []string `json:"names"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	h := healthResponse{
		Status:      "ok",
		CatalogueID: s.catalogueID.String(),
		Stops:       s.cat.StopCount(),
		Buses:       s.cat.BusCount(),
		StartedAt:   s.startedAt,
		Requests:    s.requests.Load(),
	}
	if s.answers != nil {
		h.CacheHits = s.answers.HitCount()
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) handleBusList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, namesResponse{Names: s.cat.BusNames()})
}

func (s *Server) handleStopList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, namesResponse{Names: s.cat.StopNames()})
}

func (s *Server) handleBus(w http.ResponseWriter, r *http.Request) {
	s.answer(w, r, stat.KindBus)
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	s.answer(w, r, stat.KindStop)
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request, kind stat.Kind) {
	res := s.lookup(kind, nameParam(r))
	res.Request.ID = int(s.requests.Add(1))

	status := http.StatusOK
	if !res.Found {
		status = http.StatusNotFound
	}
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(formatter.FormatText(res) + "\n"))
		return
	}
	writeJSON(w, status, formatter.ToJSON(res))
}

// lookup answers a query, from the answer cache when enabled.
// The catalogue is immutable while serving so entries never go stale.
func (s *Server) lookup(kind stat.Kind, name string) stat.Response {
	req := stat.Request{Kind: kind, Name: name}
	if s.answers == nil {
		return stat.Execute(s.cat, req)
	}
	key := string(kind) + " " + name
	if v, err := s.answers.Get(key); err == nil {
		return v.(stat.Response)
	}
	res := stat.Execute(s.cat, req)
	_ = s.answers.Set(key, res)
	return res
}

// nameParam returns the {name} segment. chi matches on RawPath when the
// request carries one (e.g. an encoded '/'), leaving the segment escaped.
func nameParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return raw
	}
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
