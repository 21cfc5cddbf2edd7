package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/staffdir/internal/cache"
	"github.com/alimgiray/staffdir/internal/handlers"
	"github.com/alimgiray/staffdir/internal/middleware"
	"github.com/alimgiray/staffdir/internal/repositories"
	"github.com/alimgiray/staffdir/internal/services"
	"github.com/alimgiray/staffdir/pkg/config"
	"github.com/alimgiray/staffdir/pkg/database"
	"github.com/alimgiray/staffdir/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	employeeRepo := repositories.NewEmployeeRepository(database.DB)
	cacheStore := cache.NewMemoryStore(time.Duration(config.AppConfig.Cache.TTLSeconds) * time.Second)
	defer cacheStore.Stop()

	mapper := services.NewEmployeeMapper()
	randomUserService := services.NewRandomUserService(
		config.AppConfig.DirectoryAPI.URL,
		config.AppConfig.DirectoryAPI.Seed,
		config.AppConfig.DirectoryAPI.Nationalities,
	)
	seedService := services.NewSeedService(employeeRepo, randomUserService, mapper, config.AppConfig.DirectoryAPI.BatchSize)
	employeeService := services.NewEmployeeService(employeeRepo, cacheStore)
	exportService := services.NewExportService()

	// Seed the store before accepting traffic. A source failure only aborts
	// the seed pass; the service still starts with an empty store.
	if config.AppConfig.Env != "test" {
		if err := seedService.Run(context.Background()); err != nil {
			logger.WithError(err).Errorf("Seeding failed, starting with current store contents")
		}
	}

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(config.AppConfig.Server.AllowedOrigins))

	setupRoutes(router, employeeService, exportService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Errorf("Forced server shutdown")
	}

	logger.Infof("Server stopped")
}

func setupRoutes(router *gin.Engine, employeeService *services.EmployeeService, exportService *services.ExportService) {
	// Initialize handlers
	employeeHandler := handlers.NewEmployeeHandler(employeeService, exportService)
	healthHandler := handlers.NewHealthHandler()

	api := router.Group("/api")
	{
		api.POST("/employees", employeeHandler.Create)
		api.GET("/employees", employeeHandler.List)
		api.GET("/employees/export", employeeHandler.Export)
		api.GET("/employees/:id", employeeHandler.Get)
		api.PATCH("/employees/:id", employeeHandler.Update)
		api.DELETE("/employees/:id", employeeHandler.Delete)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}
