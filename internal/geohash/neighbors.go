package geohash

import "math"

// Neighbor returns the hash of the cell adjacent to hash in direction d,
// at the same precision.
//
// The decoded center sits exactly at the cell midpoint, so stepping by
// twice the half-cell error along the direction's sign vector lands in
// the neighboring cell's interior, never two cells away. Probes that
// leave the valid coordinate range fail with InvalidCoordinateError:
// there is no wraparound at the antimeridian and no clamping at the
// poles.
func Neighbor(hash string, d Direction) (string, error) {
	center, lonErr, latErr, err := Decode(hash)
	if err != nil {
		return "", err
	}
	dLat, dLng := d.delta()
	probe := Coordinate{
		X: center.X + 2*math.Abs(lonErr)*dLng,
		Y: center.Y + 2*math.Abs(latErr)*dLat,
	}
	return Encode(probe, len(hash))
}

// Neighbors returns all eight compass neighbors of hash at its own
// precision. The result is all-or-nothing: the first direction that
// fails aborts the call with that error.
func Neighbors(hash string) (NeighborSet, error) {
	var ns NeighborSet
	var err error

	if ns.SW, err = Neighbor(hash, SouthWest); err != nil {
		return NeighborSet{}, err
	}
	if ns.S, err = Neighbor(hash, South); err != nil {
		return NeighborSet{}, err
	}
	if ns.SE, err = Neighbor(hash, SouthEast); err != nil {
		return NeighborSet{}, err
	}
	if ns.W, err = Neighbor(hash, West); err != nil {
		return NeighborSet{}, err
	}
	if ns.E, err = Neighbor(hash, East); err != nil {
		return NeighborSet{}, err
	}
	if ns.NW, err = Neighbor(hash, NorthWest); err != nil {
		return NeighborSet{}, err
	}
	if ns.N, err = Neighbor(hash, North); err != nil {
		return NeighborSet{}, err
	}
	if ns.NE, err = Neighbor(hash, NorthEast); err != nil {
		return NeighborSet{}, err
	}

	return ns, nil
}
