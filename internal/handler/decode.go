package handler

import (
	"context"
	"errors"
	"net/http"

	"geohash-api/internal/geohash"
	"geohash-api/internal/models"

	"github.com/gin-gonic/gin"
)

// DecodeHandler handles geohash decoding requests
type DecodeHandler struct {
	service DecodeService
}

// Service interface for dependency injection
type DecodeService interface {
	Decode(ctx context.Context, hash string) (models.DecodedPoint, error)
	BBox(ctx context.Context, hash string) (models.BoundingBox, error)
}

// NewDecodeHandler creates a new decode handler
func NewDecodeHandler(svc DecodeService) *DecodeHandler {
	return &DecodeHandler{service: svc}
}

// Decode handles GET /decode requests
func (h *DecodeHandler) Decode(c *gin.Context) {
	hash := c.Query("geohash")
	if hash == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'geohash'"})
		return
	}

	point, err := h.service.Decode(c.Request.Context(), hash)
	if err != nil {
		respondDecodeError(c, err)
		return
	}

	c.JSON(http.StatusOK, point)
}

// BBox handles GET /bbox requests
func (h *DecodeHandler) BBox(c *gin.Context) {
	hash := c.Query("geohash")
	if hash == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'geohash'"})
		return
	}

	box, err := h.service.BBox(c.Request.Context(), hash)
	if err != nil {
		respondDecodeError(c, err)
		return
	}

	c.JSON(http.StatusOK, box)
}

// respondDecodeError maps codec errors to HTTP statuses: a hash with a
// character outside the alphabet is the caller's fault (422), anything
// else is ours.
func respondDecodeError(c *gin.Context, err error) {
	var charErr geohash.InvalidCharacterError
	if errors.As(err, &charErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": charErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
