package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting origin lists
	"time"    // Token TTL duration

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string        // Application port
	MongoURI        string        // MongoDB connection string
	MongoDB         string        // MongoDB database name
	JWTSecret       string        // JWT signing secret
	TokenTTL        time.Duration // Access token lifetime
	RedisAddr       string        // Redis server address
	RedisPass       string        // Redis password
	RedisDB         int           // Redis database number
	DriveFolderID   string        // Google Drive parent folder for uploads
	DriveCredFile   string        // Service-account credentials file for Drive
	FrontendOrigins []string      // Allowed CORS origins
	IsProd          bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	ttlMinutes, err := strconv.Atoi(os.Getenv("TOKEN_TTL_MINUTES"))
	if err != nil || ttlMinutes <= 0 {
		ttlMinutes = 30 // Default token lifetime
	}
	var origins []string
	for _, o := range strings.Split(os.Getenv("FRONTEND_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return &Config{
		AppPort:         os.Getenv("APP_PORT"),                      // Application port
		MongoURI:        os.Getenv("MONGO_URI"),                     // MongoDB connection string
		MongoDB:         os.Getenv("MONGO_DB"),                      // MongoDB database name
		JWTSecret:       os.Getenv("JWT_SECRET"),                    // JWT signing secret
		TokenTTL:        time.Duration(ttlMinutes) * time.Minute,    // Access token lifetime
		RedisAddr:       os.Getenv("REDIS_ADDR"),                    // Redis server address
		RedisPass:       os.Getenv("REDIS_PASS"),                    // Redis password
		RedisDB:         redisDB,                                    // Redis database number
		DriveFolderID:   os.Getenv("DRIVE_FOLDER_ID"),               // Drive parent folder id
		DriveCredFile:   os.Getenv("DRIVE_CREDENTIALS_FILE"),        // Drive credentials file
		FrontendOrigins: origins,                                    // Allowed CORS origins
		IsProd:          os.Getenv("IS_PROD") == "true",             // Is production environment
	}
}
