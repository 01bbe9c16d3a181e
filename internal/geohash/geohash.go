package geohash

// base32Codes maps 5-bit values 0..31 to the geohash alphabet: digits
// then lowercase letters excluding a, i, l and o.
const base32Codes = "0123456789bcdefghjkmnpqrstuvwxyz"

// Encode produces the geohash of c with exactly length characters.
//
// The coordinate space starts at the full globe and is halved once per
// bit, alternating axes on a single bit counter that runs across the
// whole output: even bits split longitude, odd bits split latitude.
// Every 5 bits (most-significant first) become one alphabet character;
// the box and the axis parity carry on across character boundaries.
func Encode(c Coordinate, length int) (string, error) {
	minLon, maxLon := -180.0, 180.0
	minLat, maxLat := -90.0, 90.0

	if c.X < minLon || c.X > maxLon || c.Y < minLat || c.Y > maxLat {
		return "", InvalidCoordinateError{Coordinate: c}
	}

	out := make([]byte, 0, length)
	bitsTotal := 0
	hashValue := 0

	for len(out) < length {
		for i := 0; i < 5; i++ {
			if bitsTotal%2 == 0 {
				mid := (maxLon + minLon) / 2
				if c.X > mid {
					hashValue = hashValue<<1 + 1
					minLon = mid
				} else {
					hashValue <<= 1
					maxLon = mid
				}
			} else {
				mid := (maxLat + minLat) / 2
				if c.Y > mid {
					hashValue = hashValue<<1 + 1
					minLat = mid
				} else {
					hashValue <<= 1
					maxLat = mid
				}
			}
			bitsTotal++
		}
		out = append(out, base32Codes[hashValue])
		hashValue = 0
	}

	return string(out), nil
}

// charValue returns the 5-bit value of a hash character via ordinal
// range checks mirroring the alphabet's skipped letters (a, i, l, o).
func charValue(c rune) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'b' && c <= 'h':
		return int(c-'b') + 10, nil
	case c >= 'j' && c <= 'k':
		return int(c-'j') + 17, nil
	case c >= 'm' && c <= 'n':
		return int(c-'m') + 19, nil
	case c >= 'p' && c <= 'z':
		return int(c-'p') + 21, nil
	}
	return 0, InvalidCharacterError{Char: c}
}

// DecodeBBox returns the bounding box hash denotes. Each character
// contributes 5 bits, most-significant first, narrowing the full-globe
// box with the same continuous longitude/latitude alternation Encode
// uses. A longer hash always yields a box nested inside its prefix's.
func DecodeBBox(hash string) (Box, error) {
	minLon, maxLon := -180.0, 180.0
	minLat, maxLat := -90.0, 90.0
	isLon := true

	for _, c := range hash {
		v, err := charValue(c)
		if err != nil {
			return Box{}, err
		}

		for bs := 0; bs < 5; bs++ {
			bit := (v >> (4 - bs)) & 1
			if isLon {
				mid := (maxLon + minLon) / 2
				if bit == 1 {
					minLon = mid
				} else {
					maxLon = mid
				}
			} else {
				mid := (maxLat + minLat) / 2
				if bit == 1 {
					minLat = mid
				} else {
					maxLat = mid
				}
			}
			isLon = !isLon
		}
	}

	return Box{
		Min: Coordinate{X: minLon, Y: minLat},
		Max: Coordinate{X: maxLon, Y: maxLat},
	}, nil
}

// Decode returns the center of the cell hash denotes together with the
// half-width (longitude error) and half-height (latitude error) of the
// cell. Any point encoded to hash lies within those errors of the
// returned center.
func Decode(hash string) (Coordinate, float64, float64, error) {
	box, err := DecodeBBox(hash)
	if err != nil {
		return Coordinate{}, 0, 0, err
	}
	return box.Center(), box.LonError(), box.LatError(), nil
}
