package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	APIURL        string
	TokenFile     string
	AllowedOrigin string
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		return nil, fmt.Errorf("API_URL must be set")
	}

	tokenFile := os.Getenv("TOKEN_FILE")
	if tokenFile == "" {
		tokenFile = ".obreron/token"
	}

	allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}

	return &Config{
		ServerPort:    serverPort,
		APIURL:        apiURL,
		TokenFile:     tokenFile,
		AllowedOrigin: allowedOrigin,
	}, nil
}
