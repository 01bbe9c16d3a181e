package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"geohash-api/internal/geohash"
	"geohash-api/internal/models"
	"geohash-api/internal/service"

	"github.com/gin-gonic/gin"
)

// EncodeHandler handles geohash encoding requests
type EncodeHandler struct {
	service EncodeService
}

// Service interface for dependency injection
type EncodeService interface {
	Encode(ctx context.Context, lat, lon float64, precision int) (models.EncodedHash, error)
}

// NewEncodeHandler creates a new encode handler
func NewEncodeHandler(svc EncodeService) *EncodeHandler {
	return &EncodeHandler{service: svc}
}

// Encode handles GET /encode requests
func (h *EncodeHandler) Encode(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	precision := 12
	if precStr := c.Query("precision"); precStr != "" {
		precision, err = strconv.Atoi(precStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid precision format"})
			return
		}
	}

	encoded, err := h.service.Encode(c.Request.Context(), lat, lon, precision)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPrecision) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var rangeErr geohash.InvalidCoordinateError
		if errors.As(err, &rangeErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": rangeErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, encoded)
}
