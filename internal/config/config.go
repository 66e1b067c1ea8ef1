package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	StoreName string
	DataDir   string
	AppEnv    string
}

// LoadConfig reads configuration from the environment, with an optional
// .env file. Every setting has a default so the demo runs out of the box.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		StoreName: getenv("STORE_NAME", "Digital Books Store"),
		DataDir:   getenv("DATA_DIR", "."),
		AppEnv:    getenv("APP_ENV", "development"),
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
