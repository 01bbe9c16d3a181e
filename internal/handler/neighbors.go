package handler

import (
	"context"
	"errors"
	"net/http"

	"geohash-api/internal/geohash"
	"geohash-api/internal/models"

	"github.com/gin-gonic/gin"
)

// NeighborHandler handles adjacent-cell requests
type NeighborHandler struct {
	service NeighborService
}

// Service interface for dependency injection
type NeighborService interface {
	Neighbor(ctx context.Context, hash string, d geohash.Direction) (models.EncodedHash, error)
	Neighbors(ctx context.Context, hash string) (models.NeighborRecord, error)
}

// NewNeighborHandler creates a new neighbor handler
func NewNeighborHandler(svc NeighborService) *NeighborHandler {
	return &NeighborHandler{service: svc}
}

// Neighbors handles GET /neighbors requests
func (h *NeighborHandler) Neighbors(c *gin.Context) {
	hash := c.Query("geohash")
	if hash == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'geohash'"})
		return
	}

	record, err := h.service.Neighbors(c.Request.Context(), hash)
	if err != nil {
		respondNeighborError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Neighbor handles GET /neighbor requests
func (h *NeighborHandler) Neighbor(c *gin.Context) {
	hash := c.Query("geohash")
	if hash == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'geohash'"})
		return
	}

	dir, ok := geohash.ParseDirection(c.Query("direction"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be one of n, ne, e, se, s, sw, w, nw"})
		return
	}

	neighbor, err := h.service.Neighbor(c.Request.Context(), hash, dir)
	if err != nil {
		respondNeighborError(c, err)
		return
	}

	c.JSON(http.StatusOK, neighbor)
}

// respondNeighborError: invalid hash characters and probes past the
// edge of the coordinate space are both caller-visible input problems
// (422); the latter happens for cells on the ±180 meridian or at the
// poles, which have no neighbor on the far side.
func respondNeighborError(c *gin.Context, err error) {
	var charErr geohash.InvalidCharacterError
	if errors.As(err, &charErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": charErr.Error()})
		return
	}
	var rangeErr geohash.InvalidCoordinateError
	if errors.As(err, &rangeErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": rangeErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
