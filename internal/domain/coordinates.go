package domain

import "github.com/paulmach/orb"

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as an orb point ([lon, lat]) for GeoJSON export.
func (c Coordinates) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }

// Valid reports whether the coordinates are within WGS84 bounds.
func (c Coordinates) Valid() bool {
	return c.Lon >= -180 && c.Lon <= 180 && c.Lat >= -90 && c.Lat <= 90
}
