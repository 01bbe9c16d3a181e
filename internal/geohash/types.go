package geohash

import "fmt"

// Coordinate is a geographic point: X is longitude, Y is latitude.
// No range invariant is enforced at construction; Encode validates.
type Coordinate struct {
	X float64 // longitude, degrees
	Y float64 // latitude, degrees
}

// Box is the rectangle of coordinates a hash string represents.
// Min.X ≤ Max.X and Min.Y ≤ Max.Y always hold: decoding only ever
// narrows the full-globe box.
type Box struct {
	Min Coordinate
	Max Coordinate
}

// Center returns the midpoint of the box on both axes.
func (b Box) Center() Coordinate {
	return Coordinate{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
	}
}

// LonError returns half the box width: the maximum longitude distance
// between the center and any point inside the box.
func (b Box) LonError() float64 { return (b.Max.X - b.Min.X) / 2 }

// LatError returns half the box height.
func (b Box) LatError() float64 { return (b.Max.Y - b.Min.Y) / 2 }

// Direction is one of the eight compass directions used to locate
// adjacent cells.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// delta returns the unit sign vector (Δlat, Δlng) for the direction.
func (d Direction) delta() (dLat, dLng float64) {
	switch d {
	case North:
		return 1, 0
	case NorthEast:
		return 1, 1
	case East:
		return 0, 1
	case SouthEast:
		return -1, 1
	case South:
		return -1, 0
	case SouthWest:
		return -1, -1
	case West:
		return 0, -1
	case NorthWest:
		return 1, -1
	}
	return 0, 0
}

// String returns the lowercase compass abbreviation ("n", "ne", ...).
func (d Direction) String() string {
	switch d {
	case North:
		return "n"
	case NorthEast:
		return "ne"
	case East:
		return "e"
	case SouthEast:
		return "se"
	case South:
		return "s"
	case SouthWest:
		return "sw"
	case West:
		return "w"
	case NorthWest:
		return "nw"
	}
	return "?"
}

// ParseDirection converts a lowercase compass abbreviation into a
// Direction. It reports false for anything else.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "n":
		return North, true
	case "ne":
		return NorthEast, true
	case "e":
		return East, true
	case "se":
		return SouthEast, true
	case "s":
		return South, true
	case "sw":
		return SouthWest, true
	case "w":
		return West, true
	case "nw":
		return NorthWest, true
	}
	return 0, false
}

// NeighborSet holds the eight compass neighbors of a cell, each at the
// same precision as the source hash.
type NeighborSet struct {
	N  string
	NE string
	E  string
	SE string
	S  string
	SW string
	W  string
	NW string
}

// InvalidCoordinateError reports a coordinate outside the valid
// longitude [-180,180] or latitude [-90,90] range at encode time.
// The rejected Coordinate is carried for diagnostics.
type InvalidCoordinateError struct {
	Coordinate Coordinate
}

func (e InvalidCoordinateError) Error() string {
	return fmt.Sprintf("geohash: coordinate out of range: (%v, %v)", e.Coordinate.X, e.Coordinate.Y)
}

// InvalidCharacterError reports a character outside the base32 geohash
// alphabet encountered during decode.
type InvalidCharacterError struct {
	Char rune
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("geohash: invalid hash character %q", e.Char)
}
