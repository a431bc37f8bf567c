package models

// PointType is the only GeoJSON geometry type accepted for a [Location].
const PointType = "Point"

// Location is a GeoJSON point:
//
//	{ "type": "Point", "coordinates": [-104.9903, 39.7392] }
//
// Coordinates are ordered longitude first, latitude second.
type Location struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// NewPoint builds a [Location] of type "Point" from a longitude/latitude pair.
func NewPoint(longitude, latitude float64) *Location {
	return &Location{Type: PointType, Coordinates: []float64{longitude, latitude}}
}

// Longitude returns the first coordinate or 0 when the point is incomplete.
func (l Location) Longitude() float64 {
	if len(l.Coordinates) < 1 {
		return 0
	}
	return l.Coordinates[0]
}

// Latitude returns the second coordinate or 0 when the point is incomplete.
func (l Location) Latitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[1]
}

// IsValidPoint reports whether l is a well-formed GeoJSON point with
// coordinates inside the WGS84 longitude/latitude ranges.
func (l Location) IsValidPoint() bool {
	if l.Type != PointType || len(l.Coordinates) != 2 {
		return false
	}

	lng, lat := l.Coordinates[0], l.Coordinates[1]
	return lng >= -180 && lng <= 180 && lat >= -90 && lat <= 90
}
