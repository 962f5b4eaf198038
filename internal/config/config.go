package config

import (
	"os"
)

type Config struct {
	MongoURI string
	DBName   string
	Port     string
}

// Load reads configuration from the environment, falling back to local
// development defaults.
func Load() Config {
	cfg := Config{
		MongoURI: "mongodb://localhost:27017",
		DBName:   "yogidb",
		Port:     "8080",
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.DBName = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	return cfg
}
