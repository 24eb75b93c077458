// Package formatter renders stat responses.
//
// This package is organized into:
// - text.go: the line-based report format
// - json.go: JSON serialization
package formatter
