// Package geo provides geographic coordinates and great-circle distance.
//
// Distances are returned in metres on a spherical earth. The package has no
// state and is safe for concurrent use.
package geo
