package models

// EncodedHash represents a geohash produced for a point, echoing the precision it was encoded at.
type EncodedHash struct {
	Geohash   string `json:"geohash" yaml:"geohash"`
	Precision int    `json:"precision" yaml:"precision"`
}

// DecodedPoint represents the center of a geohash cell together with the per-axis half-cell error.
type DecodedPoint struct {
	Latitude       float64 `json:"latitude" yaml:"latitude"`
	Longitude      float64 `json:"longitude" yaml:"longitude"`
	LatitudeError  float64 `json:"latitude_error" yaml:"latitude_error"`
	LongitudeError float64 `json:"longitude_error" yaml:"longitude_error"`
}

// BoundingBox represents the rectangular area a geohash cell covers.
type BoundingBox struct {
	MinLatitude  float64 `json:"min_latitude" yaml:"min_latitude"`
	MinLongitude float64 `json:"min_longitude" yaml:"min_longitude"`
	MaxLatitude  float64 `json:"max_latitude" yaml:"max_latitude"`
	MaxLongitude float64 `json:"max_longitude" yaml:"max_longitude"`
}

// NeighborRecord holds the eight compass neighbors of a geohash cell, all at the source precision.
type NeighborRecord struct {
	N  string `json:"n" yaml:"n"`
	NE string `json:"ne" yaml:"ne"`
	E  string `json:"e" yaml:"e"`
	SE string `json:"se" yaml:"se"`
	S  string `json:"s" yaml:"s"`
	SW string `json:"sw" yaml:"sw"`
	W  string `json:"w" yaml:"w"`
	NW string `json:"nw" yaml:"nw"`
}
