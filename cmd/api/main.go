package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/vendorlynx/vendorlynx-go/internal/api/middleware"
	"github.com/vendorlynx/vendorlynx-go/internal/api/routes"
	"github.com/vendorlynx/vendorlynx-go/internal/config"
	"github.com/vendorlynx/vendorlynx-go/internal/config/db"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/account"
	domainapp "github.com/vendorlynx/vendorlynx-go/internal/domain/application"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/project"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/vendor"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/workorder"
	"github.com/vendorlynx/vendorlynx-go/pkg/storage"
)

// @title VendorLynx API
// @version 1.0
// @description Marketplace connecting property managers with maintenance vendors.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&account.Account{},
		&vendor.Store{},
		&project.Project{},
		&domainapp.ProjectApplication{},
		&workorder.WorkOrder{},
		&workorder.Log{},
		&notification.Notification{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Object storage for work order log images
	storage.InitMinio()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
