package main

import (
	"context"                                 // context package is needed for client setup
	"log"                                     // log package is needed for logging
	"chitrashala_backend/internal/api"        // Custom package for API handlers
	"chitrashala_backend/internal/config"     // Custom package for configuration
	"chitrashala_backend/internal/db"         // Custom package for database setup
	"chitrashala_backend/internal/middleware" // Custom package for middleware
	"chitrashala_backend/internal/storage"    // Custom package for blob storage
	"chitrashala_backend/internal/store"      // Custom package for persistence

	// For loading .env files
	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"google.golang.org/api/option" // Google API client options
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to MongoDB and bootstrap indexes
	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		logrus.Fatalf("failed to connect to MongoDB: %v", err) // Fatal error if DB connection fails
	}
	database := client.Database(cfg.MongoDB)
	if err := db.EnsureIndexes(context.Background(), database); err != nil {
		logrus.Fatalf("failed to ensure indexes: %v", err)
	}

	// Store instances over the three collections
	users := store.NewMongoUsers(database)
	categories := store.NewMongoCategories(database)
	wallpapers := store.NewMongoWallpapers(database)

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err = redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Setup the Drive uploader from pre-provisioned credentials
	uploader, err := storage.NewDriveUploader(context.Background(), cfg.DriveFolderID,
		option.WithCredentialsFile(cfg.DriveCredFile))
	if err != nil {
		logrus.Fatalf("failed to set up Drive uploader: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Allow the configured frontend origins with credentials
	if len(cfg.FrontendOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.FrontendOrigins,                        // Frontend origins
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},         // Methods the frontend uses
			AllowHeaders:     []string{"Authorization", "Content-Type"},  // Bearer token and payloads
			AllowCredentials: true,                                       // Cookies/credentials allowed
		}))
	}

	// Public routes
	r.POST("/users/", api.RegisterHandler(users))                                          // Registration endpoint
	r.POST("/token", api.LoginHandler(users, cfg.JWTSecret, cfg.TokenTTL))                 // Login endpoint
	r.GET("/wallpapers/", api.ListWallpapersHandler(wallpapers, categories, redisClient))  // Paginated listing endpoint
	r.GET("/wallpapers/category/:category_name", api.ListByCategoryHandler(wallpapers, categories)) // Category listing endpoint
	r.POST("/wallpapers/:wallpaper_id/download", api.DownloadHandler(wallpapers, redisClient))      // Download counter endpoint
	r.GET("/categories/", api.ListCategoriesHandler(categories))                           // Public category listing

	// Authenticated routes (protected by JWT)
	authGroup := r.Group("/")
	authGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret, users))
	authGroup.GET("/users/me", api.MeHandler())                                            // Current user endpoint
	authGroup.POST("/wallpapers/:wallpaper_id/like", api.ToggleLikeHandler(wallpapers, redisClient)) // Like toggle endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret, users), middleware.AdminOnlyMiddleware())
	adminGroup.GET("/wallpapers/", api.AdminListWallpapersHandler(wallpapers, categories)) // Admin wallpaper listing
	adminGroup.POST("/categories/", api.CreateCategoryHandler(categories))                 // Category creation endpoint
	adminGroup.GET("/categories/", api.ListCategoriesHandler(categories))                  // Admin category listing
	adminGroup.POST("/upload/", api.UploadHandler(wallpapers, categories, uploader, redisClient)) // Wallpaper upload endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
