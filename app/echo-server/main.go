package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"styleLoop/app/echo-server/router"
	outfitService "styleLoop/business/outfit"
	productService "styleLoop/business/product"
	"styleLoop/domain"
	"styleLoop/internal/middleware"
	"styleLoop/internal/repository/cache"
	psqlRepo "styleLoop/internal/repository/postgres"
	"styleLoop/internal/rest"
	"styleLoop/pkg/config"
	"styleLoop/pkg/database"
	redisDB "styleLoop/pkg/database/redis"
	"styleLoop/pkg/logger"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting StyleLoop", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	if err := db.AutoMigrate(&domain.Product{}, &domain.FeedbackEvent{}); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Init repo
	productsRepo := psqlRepo.NewProductRepository(db)
	feedbackRepo := psqlRepo.NewFeedbackRepository(db)

	// Redis is a soft dependency: the pool cache is skipped when it is
	// unreachable and generation reads straight from Postgres.
	var poolSource outfitService.ProductRepository = productsRepo
	if redisClient, err := redisDB.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, product pool cache disabled", "error", err)
	} else {
		poolSource = cache.NewProductPoolCache(redisClient, productsRepo)
		defer func() {
			if err := redisDB.CloseRedisClient(redisClient); err != nil {
				logger.Error("Failed to close redis client", "error", err)
			}
		}()
	}

	// Init service
	outfitSvc := outfitService.NewOutfitService(poolSource, feedbackRepo, outfitService.DefaultConfig())
	productSvc := productService.NewProductService(productsRepo)

	// Init handler
	outfitHandler := rest.NewOutfitHandler(outfitSvc)
	productHandler := rest.NewProductHandler(productSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupOutfitRoutes(api, outfitHandler)
	router.SetupProductRoutes(api, productHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
