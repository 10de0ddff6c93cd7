package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	LogLevel         string
	ServerRunAddress string
	StorageBackend   string
	StoragePath      string
	DatabaseURI      string
	RedisAddress     string
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	LogLevel = os.Getenv("LOG_LEVEL")
	if LogLevel == "" {
		LogLevel = "info"
	}

	ServerRunAddress = os.Getenv("SERVER_RUN_ADDRESS")
	if ServerRunAddress == "" {
		ServerRunAddress = "0.0.0.0:8080"
	}

	// memory, file, postgres or redis
	StorageBackend = os.Getenv("STORAGE_BACKEND")
	if StorageBackend == "" {
		StorageBackend = "memory"
	}

	StoragePath = os.Getenv("STORAGE_PATH")
	if StoragePath == "" {
		StoragePath = "ecosnap_state.json"
	}

	DatabaseURI = os.Getenv("DATABASE_URI")
	if DatabaseURI == "" {
		DatabaseURI = "host=db user=postgres password=password dbname=ecosnap sslmode=disable"
	}

	RedisAddress = os.Getenv("REDIS_ADDR")
	if RedisAddress == "" {
		RedisAddress = "localhost:6379"
	}
}
