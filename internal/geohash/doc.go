// Package geohash converts geographic coordinates to and from base32
// geohash strings and derives adjacent cells.
//
// What:
//
//   - Encode a Coordinate to a hash of any chosen length via interleaved
//     binary subdivision of longitude and latitude.
//   - DecodeBBox returns the Box a hash denotes; Decode returns its center
//     together with the per-axis half-cell error.
//   - Neighbor / Neighbors step to the adjacent cell(s) of equal precision
//     in the eight compass directions.
//
// Why:
//
//   - Proximity bucketing: points sharing a hash prefix share a region.
//   - Range queries: a cell plus its eight neighbors covers every point
//     within one cell-width of the center.
//
// Properties:
//
//   - All operations are pure and stateless; concurrent calls need no
//     coordination.
//   - Precision strictly increases with length: the box for a hash prefix
//     contains the box for any extension of it.
//   - No antimeridian wraparound and no pole clamping: a neighbor probe
//     that leaves [-180,180]×[-90,90] fails with InvalidCoordinateError.
//
// Errors:
//
//   - InvalidCoordinateError: longitude or latitude out of range at encode
//     time; carries the offending Coordinate.
//   - InvalidCharacterError: a character outside the base32 alphabet met
//     during decode; carries the offending character.
package geohash
