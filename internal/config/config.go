package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	CORS   CORSConfig
	Seed   bool
}

// CORS configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Default configuration values
const (
	DefaultServerPort = "3000"
	DefaultServerHost = ""
	DefaultMongoDB    = "ecotrack"
	DefaultTokenTTL   = 7 * 24 * time.Hour
	DefaultSeed       = true
	// Pagination defaults
	DefaultCarbonLimit    = 10
	DefaultChallengeLimit = 30
	DefaultQuestionLimit  = 10
	DefaultAttemptLimit   = 10
	// Leaderboard size cap
	LeaderboardLimit = 20
)

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present. MONGO_URI and JWT_SECRET
// have no usable defaults and abort startup when unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", DefaultServerPort),
			Host: getEnv("HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      mongoURI,
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			JWTSecret: jwtSecret,
			TokenTTL:  getEnvDuration("JWT_EXPIRES_IN", DefaultTokenTTL),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
				"http://localhost:3000",
				"http://127.0.0.1:5173",
			},
		},
		Seed: getEnvBool("SEED_ON_START", DefaultSeed),
	}, nil
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
