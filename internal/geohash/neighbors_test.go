package geohash_test

import (
	"testing"

	"geohash-api/internal/geohash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighbor(t *testing.T) {
	tests := []struct {
		direction geohash.Direction
		expected  string
	}{
		{geohash.North, "9q60y60rht"},
		{geohash.NorthEast, "9q60y60rhv"},
		{geohash.East, "9q60y60rhu"},
		{geohash.SouthEast, "9q60y60rhg"},
		{geohash.South, "9q60y60rhe"},
		{geohash.SouthWest, "9q60y60rh7"},
		{geohash.West, "9q60y60rhk"},
		{geohash.NorthWest, "9q60y60rhm"},
	}

	for _, tt := range tests {
		t.Run(tt.direction.String(), func(t *testing.T) {
			got, err := geohash.Neighbor("9q60y60rhs", tt.direction)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNeighbors(t *testing.T) {
	ns, err := geohash.Neighbors("9q60y60rhs")
	require.NoError(t, err)

	assert.Equal(t, geohash.NeighborSet{
		N:  "9q60y60rht",
		NE: "9q60y60rhv",
		E:  "9q60y60rhu",
		SE: "9q60y60rhg",
		S:  "9q60y60rhe",
		SW: "9q60y60rh7",
		W:  "9q60y60rhk",
		NW: "9q60y60rhm",
	}, ns)
}

// TestNeighbors_PreservesLength: every neighbor of a hash has the same
// precision as the hash itself.
func TestNeighbors_PreservesLength(t *testing.T) {
	for _, hash := range []string{"9", "9q", "9q60y", "9q60y60rhs"} {
		ns, err := geohash.Neighbors(hash)
		require.NoError(t, err)
		for _, n := range []string{ns.N, ns.NE, ns.E, ns.SE, ns.S, ns.SW, ns.W, ns.NW} {
			assert.Len(t, n, len(hash))
		}
	}
}

func TestNeighbor_InvalidHash(t *testing.T) {
	_, err := geohash.Neighbor("9a", geohash.North)

	var charErr geohash.InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, 'a', charErr.Char)
}

// TestNeighbor_NoPoleWrap: a cell touching the north pole has no
// northern neighbor; the probe leaves the valid latitude range and the
// call fails instead of wrapping.
func TestNeighbor_NoPoleWrap(t *testing.T) {
	hash, err := geohash.Encode(geohash.Coordinate{X: 0, Y: 89.999}, 3)
	require.NoError(t, err)

	_, err = geohash.Neighbor(hash, geohash.North)
	var rangeErr geohash.InvalidCoordinateError
	require.ErrorAs(t, err, &rangeErr)
	assert.Greater(t, rangeErr.Coordinate.Y, 90.0)

	_, err = geohash.Neighbors(hash)
	assert.Error(t, err, "all-or-nothing: one bad direction fails the set")
}

// TestNeighbor_NoAntimeridianWrap: same at the ±180 meridian.
func TestNeighbor_NoAntimeridianWrap(t *testing.T) {
	hash, err := geohash.Encode(geohash.Coordinate{X: 179.999, Y: 0}, 3)
	require.NoError(t, err)

	_, err = geohash.Neighbor(hash, geohash.East)
	var rangeErr geohash.InvalidCoordinateError
	require.ErrorAs(t, err, &rangeErr)
	assert.Greater(t, rangeErr.Coordinate.X, 180.0)
}

func TestParseDirection(t *testing.T) {
	for _, d := range []geohash.Direction{
		geohash.North, geohash.NorthEast, geohash.East, geohash.SouthEast,
		geohash.South, geohash.SouthWest, geohash.West, geohash.NorthWest,
	} {
		got, ok := geohash.ParseDirection(d.String())
		require.True(t, ok)
		assert.Equal(t, d, got)
	}

	for _, s := range []string{"", "north", "N", "en", "x"} {
		_, ok := geohash.ParseDirection(s)
		assert.False(t, ok, "ParseDirection(%q)", s)
	}
}
