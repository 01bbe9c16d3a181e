package service

import (
	"context"
	"errors"
	"fmt"

	"geohash-api/internal/geohash"
	"geohash-api/internal/models"
)

// Precision bounds accepted by the API surfaces. The codec itself has
// no upper limit, but beyond ~22 characters double-precision midpoints
// stop moving and extra characters carry no information.
const (
	MinPrecision = 1
	MaxPrecision = 22
)

// ErrInvalidPrecision indicates a requested precision outside [MinPrecision, MaxPrecision].
var ErrInvalidPrecision = errors.New("service: precision must be between 1 and 22")

// EncodeService contains the business logic for turning coordinates into geohashes
type EncodeService struct{}

// NewEncodeService creates a new encode service
func NewEncodeService() *EncodeService {
	return &EncodeService{}
}

// Encode hashes a latitude/longitude pair at the requested precision
func (s *EncodeService) Encode(ctx context.Context, lat, lon float64, precision int) (models.EncodedHash, error) {
	if precision < MinPrecision || precision > MaxPrecision {
		return models.EncodedHash{}, ErrInvalidPrecision
	}

	hash, err := geohash.Encode(geohash.Coordinate{X: lon, Y: lat}, precision)
	if err != nil {
		return models.EncodedHash{}, fmt.Errorf("service: failed to encode coordinate: %w", err)
	}

	return models.EncodedHash{Geohash: hash, Precision: precision}, nil
}
