// Package input turns catalogue descriptions into validated stop and bus
// definitions and applies them to a catalogue.
//
// Two sources are supported:
//   - the line-oriented command language ("Stop X: lat, lng, Dm to Y",
//     "Bus N: A > B > A", "Bus N: A - B - C"), optionally framed by line counts
//   - YAML batches with the same records
//
// Apply enforces the ingestion order: all stops, then all distances, then all
// buses. A batch that references an undefined stop is rejected before the
// catalogue is touched.
package input
