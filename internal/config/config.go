package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultDBPath = "./estimator.db"
	defaultPort   = "8080"
	defaultEnv    = "dev"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	DBPath      string
	Port        string
	Env         string
	CompanyName string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables. Missing file is
	// fine; production uses real env injection, and godotenv never
	// overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := Config{
		DBPath:      os.Getenv("DB_PATH"),
		Port:        os.Getenv("PORT"),
		Env:         os.Getenv("APP_ENV"),
		CompanyName: os.Getenv("COMPANY_NAME"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.CompanyName == "" {
		cfg.CompanyName = "Coastal Graphics Group"
	}

	return cfg
}

// IsDev reports whether the app runs in local development mode, where
// migrations and catalog seeding happen automatically at startup.
func (c Config) IsDev() bool {
	return c.Env == "dev"
}
