package main

import (
	"net/http"

	"geohash-api/internal/config"
	"geohash-api/internal/handler"
	"geohash-api/internal/middleware"
	"geohash-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	gin.SetMode(config.GinMode)

	// Initialize layers
	encodeService := service.NewEncodeService()
	decodeService := service.NewDecodeService()
	neighborService := service.NewNeighborService()

	encodeHandler := handler.NewEncodeHandler(encodeService)
	decodeHandler := handler.NewDecodeHandler(decodeService)
	neighborHandler := handler.NewNeighborHandler(neighborService)

	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/encode", encodeHandler.Encode)
	r.GET("/decode", decodeHandler.Decode)
	r.GET("/bbox", decodeHandler.BBox)
	r.GET("/neighbor", neighborHandler.Neighbor)
	r.GET("/neighbors", neighborHandler.Neighbors)

	log.Info().Str("address", config.ServerAddress).Msg("starting geohash API")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
