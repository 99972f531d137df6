package main

import (
	"context"

	_ "jma-area-api/docs"
	"jma-area-api/internal/client"
	"jma-area-api/internal/config"
	"jma-area-api/internal/handler"
	"jma-area-api/internal/logger"
	"jma-area-api/internal/observability"
	"jma-area-api/internal/repository"
	"jma-area-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title		JMA Area API
//	@version	2.0
//	@BasePath	/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(config.LogLevel, config.LogFormat)
	gin.SetMode(config.GinMode)

	metrics := observability.NewMetrics()

	// Code table, built once before serving
	muniCodes := client.NewMuniCodeClient(config.MuniCodesURL, config.MuniSheetMarker, config.MuniDefaultSheet, config.FetchTimeout)
	areas := client.NewAreaClient(config.JMAAreaURL, config.FetchTimeout)

	table, stats, err := repository.Load(context.Background(), muniCodes, areas)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build code table")
	}
	recordBuildStats(metrics, table, stats)

	// Initialize layers
	geocoder := client.NewReverseGeocoder(config.ReverseGeocoderURL, config.GeocoderTimeout, metrics)
	jmaAreaService := service.NewJMAAreaService(geocoder, table, metrics)
	jmaAreaHandler := handler.NewJMAAreaHandler(jmaAreaService)

	r := newRouter(jmaAreaHandler, table.Len())

	log.Info().Str("addr", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newRouter(jmaAreaHandler *handler.JMAAreaHandler, entries int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	r.GET("/", handler.Index)
	r.GET("/health", handler.Health(entries))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/jma_area", jmaAreaHandler.JMAArea)

	return r
}

func recordBuildStats(metrics *observability.Metrics, table *repository.CodeTable, stats repository.BuildStats) {
	metrics.CodeTableEntries.Set(float64(table.Len()))
	metrics.CodeTableRows.WithLabelValues("kept").Add(float64(stats.Kept))
	metrics.CodeTableRows.WithLabelValues("aggregate").Add(float64(stats.Aggregate))
	metrics.CodeTableRows.WithLabelValues("unmapped").Add(float64(stats.Unmapped))
	metrics.CodeTableRows.WithLabelValues("malformed").Add(float64(stats.Malformed))

	log.Info().
		Int("entries", table.Len()).
		Int("rows", stats.Rows).
		Int("aggregate", stats.Aggregate).
		Int("unmapped", stats.Unmapped).
		Int("malformed", stats.Malformed).
		Msg("code table built")
}
