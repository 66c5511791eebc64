package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/smarthospital/cleantrack/config"
	"github.com/smarthospital/cleantrack/middlewares"
	"github.com/smarthospital/cleantrack/models"
	"github.com/smarthospital/cleantrack/router"
	"github.com/smarthospital/cleantrack/services"
	"github.com/smarthospital/cleantrack/utils"
)

func init() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	// GEMINI_API_KEY wajib ada; tanpa itu pipeline verifikasi tidak bisa jalan
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		utils.ErrorLogger.Fatal("GEMINI_API_KEY is not set")
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = filepath.Join("public", "uploads")
	}

	verifier := services.NewGeminiVerifier(
		os.Getenv("GEMINI_BASE_URL"),
		apiKey,
		os.Getenv("GEMINI_MODEL"),
	)
	assets := services.NewLocalAssetStore(uploadDir)

	r := router.SetupRouter(db, verifier, assets, uploadDir)

	// Rate limiter global (50 requests per detik per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.TaskAssignment{},
		&models.CleaningRecord{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
