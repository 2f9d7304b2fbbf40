package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds every environment-derived setting the app needs. It is built
// once in main and handed to the services that use it, so nothing outside this
// package reads os.Getenv.
type Config struct {
	Port          string
	GinMode       string
	DatabaseDSN   string
	SupabaseURL   string
	SupabaseKey   string
	StorageBucket string
	UploadDir     string
}

func Load() *Config {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		GinMode:       os.Getenv("GIN_MODE"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		SupabaseURL:   os.Getenv("SUPABASE_URL"),
		SupabaseKey:   os.Getenv("SUPABASE_ANON_KEY"),
		StorageBucket: os.Getenv("SUPABASE_STORAGE_BUCKET"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StorageBucket == "" {
		cfg.StorageBucket = "cakepics"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "public/uploads"
	}

	return cfg
}

// Validate reports the first missing setting that the submission flow cannot
// run without.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN is not set")
	}
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is not set")
	}
	if c.SupabaseKey == "" {
		return fmt.Errorf("SUPABASE_ANON_KEY is not set")
	}
	return nil
}

// InitDB opens the Supabase Postgres connection.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
