package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"contactbox/internal/config"
	"contactbox/internal/handlers"
	"contactbox/internal/middleware"
	"contactbox/internal/repositories"
	"contactbox/internal/services"
	"contactbox/pkg/database"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create database connection pool
	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create repositories
	messageRepo := repositories.NewMessageRepo(pool)
	userRepo := repositories.NewUserRepo(pool)

	// Create services
	captchaSvc := services.NewCaptchaService(cfg.RecaptchaSecret, cfg.CaptchaVerifyURL)
	messageSvc := services.NewMessageService(messageRepo, captchaSvc)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret)

	// Create handlers
	messageHandlers := handlers.NewMessageHandlers(messageSvc)
	authHandlers := handlers.NewAuthHandlers(authSvc)
	healthHandlers := handlers.NewHealthHandlers(pool)

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Public routes
	e.GET("/", healthHandlers.Root)
	e.GET("/health", healthHandlers.HealthCheck)
	e.POST("/api/contact", messageHandlers.SubmitContact)
	e.POST("/api/login", authHandlers.Login)

	// Staff routes (require a verified token)
	protected := e.Group("/api")
	protected.Use(middleware.JWTMiddleware(cfg.JWTSecret))
	protected.GET("/mensajes", messageHandlers.ListMessages)
	protected.PUT("/mensajes/:id/status", messageHandlers.UpdateMessageStatus)
	protected.POST("/insert-user", authHandlers.CreateUser)

	log.Printf("Contact backend starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
