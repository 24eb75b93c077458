// Package stat answers catalogue queries.
//
// A request is either "Bus <name>" (route statistics) or "Stop <name>"
// (buses passing through the stop). Execute resolves it against a catalogue
// and returns a structured Response; rendering lives in the formatter package.
package stat
