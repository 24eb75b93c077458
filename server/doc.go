// Package server exposes a built catalogue over HTTP.
//
// Routes:
//   - GET /api/health
//   - GET /api/buses, GET /api/buses/{name}
//   - GET /api/stops, GET /api/stops/{name}
//
// Answers are JSON by default; add ?format=text for the report line.
// The catalogue must be fully built before the server starts; handlers only read.
package server
