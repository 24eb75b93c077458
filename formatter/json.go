package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/transport-catalogue/stat"
)

type busJSON struct {
	RequestID       int     `json:"request_id"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
	RouteLength     int     `json:"route_length"`
	Curvature       float64 `json:"curvature"`
}

type stopJSON struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

type notFoundJSON struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

// ToJSON returns the JSON-serializable form of a response
func ToJSON(res stat.Response) any {
	id := res.Request.ID
	if !res.Found {
		return notFoundJSON{RequestID: id, ErrorMessage: "not found"}
	}
	if res.Request.Kind == stat.KindStop {
		buses := res.Buses
		if buses == nil {
			buses = []string{}
		}
		return stopJSON{RequestID: id, Buses: buses}
	}
	return busJSON{
		RequestID:       id,
		StopCount:       res.Stat.TotalStops,
		UniqueStopCount: res.Stat.UniqueStops,
		RouteLength:     res.Stat.RouteLength,
		Curvature:       res.Stat.Curvature,
	}
}

// BuildJSON serializes a single response
func BuildJSON(res stat.Response) []byte {
	b, _ := json.Marshal(ToJSON(res))
	return b
}

// BuildJSONArray serializes responses as a JSON array in request order
func BuildJSONArray(responses []stat.Response) []byte {
	out := make([]any, 0, len(responses))
	for _, res := range responses {
		out = append(out, ToJSON(res))
	}
	b, _ := json.Marshal(out)
	return b
}
