package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	UserServiceURL  string
	OrderServiceURL string
	PeerTimeout     time.Duration
	LogLevel        string
	LogFormat       string
}

// Load reads configuration from the environment. A .env file is loaded
// first when present so local runs do not need exported variables.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("could not load .env file:", err)
		}
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "productCatalog"),
		UserServiceURL:  getEnv("USER_SERVICE_URL", "http://localhost:8001"),
		OrderServiceURL: getEnv("ORDER_SERVICE_URL", "http://localhost:8003"),
		PeerTimeout:     getDurationSeconds("PEER_TIMEOUT", 3*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDurationSeconds(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs <= 0 {
		log.Printf("invalid %s=%q, using default", key, value)
		return fallback
	}
	return time.Duration(secs) * time.Second
}
