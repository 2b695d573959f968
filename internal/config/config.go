package config

import (
	"errors"  // For configuration errors
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// ErrMissingDSN is returned when no database connection string can be built
var ErrMissingDSN = errors.New("database connection string is not configured")

// Config holds the application configuration
type Config struct {
	AppPort        string        // Application port
	DBDSN          string        // Full database connection string, wins over the DB_* parts
	DBUser         string        // Database user
	DBPassword     string        // Database password
	DBHost         string        // Database host
	DBPort         string        // Database port
	DBName         string        // Database name
	GoogleAPIKey   string        // Google Geocoding API key
	GeocodeBaseURL string        // Geocoding API base URL
	GeocodeTimeout time.Duration // Timeout for one geocoding call
	RedisAddr      string        // Redis server address, empty disables the signup lock
	RedisPass      string        // Redis password
	RedisDB        int           // Redis database number
	IsProd         bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	timeout, err := time.ParseDuration(os.Getenv("GEOCODE_TIMEOUT"))
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Config{
		AppPort:        getEnv("APP_PORT", "5000"),                                // Application port
		DBDSN:          os.Getenv("DB_DSN"),                                       // Full connection string
		DBUser:         os.Getenv("DB_USER"),                                      // Database user
		DBPassword:     os.Getenv("DB_PASSWORD"),                                  // Database password
		DBHost:         os.Getenv("DB_HOST"),                                      // Database host
		DBPort:         getEnv("DB_PORT", "3306"),                                 // Database port
		DBName:         os.Getenv("DB_NAME"),                                      // Database name
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),                               // Geocoding API key
		GeocodeBaseURL: getEnv("GEOCODE_BASE_URL", "https://maps.googleapis.com"), // Geocoding base URL
		GeocodeTimeout: timeout,                                                   // Geocoding timeout
		RedisAddr:      os.Getenv("REDIS_ADDR"),                                   // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),                                   // Redis password
		RedisDB:        redisDB,                                                   // Redis database number
		IsProd:         os.Getenv("IS_PROD") == "true",                            // Is production environment
	}
}

// DSN returns the MySQL connection string, built from the DB_* parts when DB_DSN is unset
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	if c.DBHost == "" || c.DBName == "" {
		return ""
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// Validate reports configuration the server cannot start without
func (c *Config) Validate() error {
	if c.DSN() == "" {
		return ErrMissingDSN
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
