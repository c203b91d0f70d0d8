package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Represents a travel path between an origin and a destination.
// Coordinates are stored in travel order. A Route is built once from an
// encoded polyline, printed, and discarded.
type Route []Coordinate

// Return the route as an orb line string for geometry helpers.
func (r Route) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(r))
	for _, c := range r {
		ls = append(ls, c.Point())
	}
	return ls
}

// Geodesic length of the route in meters. Zero for routes with fewer than two points.
func (r Route) LengthMeters() float64 {
	if len(r) < 2 {
		return 0
	}
	return geo.Length(r.LineString())
}
