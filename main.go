package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/bakery-order-app/config"
	"github.com/yeremiapane/bakery-order-app/models"
	"github.com/yeremiapane/bakery-order-app/router"
	"github.com/yeremiapane/bakery-order-app/services"
	"github.com/yeremiapane/bakery-order-app/utils"
	"gorm.io/gorm"
)

func init() {
	// Load .env before anything reads configuration.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		utils.ErrorLogger.Fatalf("Incomplete configuration: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		utils.ErrorLogger.Fatalf("Failed to create upload directory: %v", err)
	}

	store := services.NewSessionStore()
	store.Start()
	defer store.Stop()

	r := router.SetupRouter(db, cfg, store)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&models.OrderRecord{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
