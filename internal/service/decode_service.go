package service

import (
	"context"
	"fmt"

	"geohash-api/internal/geohash"
	"geohash-api/internal/models"
)

// DecodeService contains the business logic for turning geohashes back into coordinates
type DecodeService struct{}

// NewDecodeService creates a new decode service
func NewDecodeService() *DecodeService {
	return &DecodeService{}
}

// Decode returns the center of the cell a geohash denotes plus the per-axis error
func (s *DecodeService) Decode(ctx context.Context, hash string) (models.DecodedPoint, error) {
	center, lonErr, latErr, err := geohash.Decode(hash)
	if err != nil {
		return models.DecodedPoint{}, fmt.Errorf("service: failed to decode geohash: %w", err)
	}

	return models.DecodedPoint{
		Latitude:       center.Y,
		Longitude:      center.X,
		LatitudeError:  latErr,
		LongitudeError: lonErr,
	}, nil
}

// BBox returns the bounding box a geohash denotes
func (s *DecodeService) BBox(ctx context.Context, hash string) (models.BoundingBox, error) {
	box, err := geohash.DecodeBBox(hash)
	if err != nil {
		return models.BoundingBox{}, fmt.Errorf("service: failed to decode geohash: %w", err)
	}

	return models.BoundingBox{
		MinLatitude:  box.Min.Y,
		MinLongitude: box.Min.X,
		MaxLatitude:  box.Max.Y,
		MaxLongitude: box.Max.X,
	}, nil
}
