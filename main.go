package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"roost-backend/internal/api"
	"roost-backend/internal/auth"
	"roost-backend/internal/config"
	"roost-backend/internal/database"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.UsingDefaultSecret() {
		log.Println("WARNING: ROOST_TOKEN_SECRET is not set; using the insecure development default")
	}

	// Initialize database
	log.Printf("Initializing database at %s", cfg.DBPath)
	if err := database.Open(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize auth services
	tokens := auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)
	authSvc := auth.NewService(database.NewUserRepo(), tokens)

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	api.RegisterRoutes(e, authSvc)

	log.Printf("Starting Roost backend on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
