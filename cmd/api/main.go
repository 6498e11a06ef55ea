package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "address-resolver/docs"
	"address-resolver/internal/config"
	"address-resolver/internal/gateway"
	"address-resolver/internal/handler"
	"address-resolver/internal/repository"
	"address-resolver/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	setupLogger(config.LogLevel, config.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Geocoding gateway; without an API key every lookup resolves locally as unavailable
	var geocoder service.Geocoder
	if config.KakaoRestAPIKey != "" {
		cached, err := gateway.NewCachedGateway(
			gateway.NewKakaoClient(config.KakaoBaseURL, config.KakaoRestAPIKey, config.GatewayTimeout),
			config.GatewayCacheSize,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot create geocoding gateway")
		}
		geocoder = cached
	} else {
		log.Warn().Msg("KAKAO_REST_API_KEY not set, geocoding gateway unavailable")
	}

	// Database connection
	var store service.BatchStore
	if config.DBSource != "" {
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot create schema")
		}
		store = repo
	} else {
		log.Warn().Msg("DB_SOURCE not set, batch results are kept in memory only")
	}

	// Initialize layers
	resolver := service.NewResolver(geocoder)
	orchestrator := service.NewOrchestrator(resolver, config.BatchDelay)
	batchService := service.NewBatchService(orchestrator, store)
	selectionService := service.NewSelectionService(geocoder)

	resolveHandler := handler.NewResolveHandler(orchestrator)
	selectionHandler := handler.NewSelectionHandler(selectionService)
	batchHandler := handler.NewBatchHandler(batchService)

	gin.SetMode(config.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"gateway": resolver.Available(),
		})
	})

	r.GET("/resolve", resolveHandler.Resolve)
	r.POST("/selections", selectionHandler.Select)
	r.POST("/batches", batchHandler.Start)
	r.GET("/batches/:id", batchHandler.Get)
	r.GET("/batches/:id/export", batchHandler.Export)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: r,
	}

	go func() {
		log.Info().Str("address", config.ServerAddress).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	// let an in-flight batch finish and persist before the pool closes
	batchService.Wait()
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
