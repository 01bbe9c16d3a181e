package service

import (
	"context"
	"fmt"

	"geohash-api/internal/geohash"
	"geohash-api/internal/models"
)

// NeighborService contains the business logic for finding adjacent geohash cells
type NeighborService struct{}

// NewNeighborService creates a new neighbor service
func NewNeighborService() *NeighborService {
	return &NeighborService{}
}

// Neighbor returns the adjacent cell of equal precision in one compass direction
func (s *NeighborService) Neighbor(ctx context.Context, hash string, d geohash.Direction) (models.EncodedHash, error) {
	neighbor, err := geohash.Neighbor(hash, d)
	if err != nil {
		return models.EncodedHash{}, fmt.Errorf("service: failed to find %s neighbor: %w", d, err)
	}

	return models.EncodedHash{Geohash: neighbor, Precision: len(neighbor)}, nil
}

// Neighbors returns all eight compass neighbors at the source precision.
// One failing direction fails the whole call; there is no partial record.
func (s *NeighborService) Neighbors(ctx context.Context, hash string) (models.NeighborRecord, error) {
	ns, err := geohash.Neighbors(hash)
	if err != nil {
		return models.NeighborRecord{}, fmt.Errorf("service: failed to find neighbors: %w", err)
	}

	return models.NeighborRecord{
		N:  ns.N,
		NE: ns.NE,
		E:  ns.E,
		SE: ns.SE,
		S:  ns.S,
		SW: ns.SW,
		W:  ns.W,
		NW: ns.NW,
	}, nil
}
