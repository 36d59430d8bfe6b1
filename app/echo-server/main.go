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

	"giveLocal/app/echo-server/router"
	"giveLocal/business/claim"
	"giveLocal/business/item"
	"giveLocal/business/match"
	userService "giveLocal/business/user"
	"giveLocal/internal/middleware"
	psqlRepo "giveLocal/internal/repository/postgres"
	redisRepo "giveLocal/internal/repository/redis"
	"giveLocal/internal/rest"
	"giveLocal/pkg/config"
	"giveLocal/pkg/database"
	redisdb "giveLocal/pkg/database/redis"
	"giveLocal/pkg/logger"
	"giveLocal/pkg/metrics"
	"giveLocal/pkg/utils"

	"github.com/go-playground/validator/v10"
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
	logger.Info("Starting GiveLocal", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close Redis client", err)
		}
	}()

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	itemRepo := psqlRepo.NewItemRepository(db)
	sessionRepo := redisRepo.NewSessionRepository(redisClient)

	// Init service
	userSvc := userService.NewUserService(userRepo, sessionRepo, validate)
	itemSvc := item.NewItemService(itemRepo)
	matchSvc := match.NewMatchService(itemRepo, match.Config{
		RadiusKm:     cfg.Match.RadiusKm,
		CandidateCap: cfg.Match.CandidateCap,
		MaxResults:   cfg.Match.MaxResults,
	})
	claimSvc := claim.NewClaimService(itemRepo, userRepo)

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	itemHandler := rest.NewItemHandler(itemSvc)
	matchHandler := rest.NewMatchHandler(matchSvc, claimSvc)

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

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(sessionRepo)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupAuthRoutes(api, userHandler, authRequired)
	router.SetupItemRoutes(api, itemHandler, authRequired)
	router.SetupMatchRoutes(api, matchHandler, authRequired)

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
