package domain

import "github.com/paulmach/orb"

// Geographic coordinate in degrees, as decoded from a provider polyline.
// Values are trusted as received and never range-checked.
type Coordinate struct {
	Lat  float64
	Long float64
}

// Return the coordinate as an orb point ([lon, lat]).
func (c Coordinate) Point() orb.Point { return orb.Point{c.Long, c.Lat} }
