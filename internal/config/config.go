package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Supabase SupabaseConfig
	Store    StoreConfig
	App      AppConfig
	CORS     CORSConfig
	Auth     AuthConfig
}

// SupabaseConfig holds the hosted data store credentials.
// They are checked when the connection handle is created, not here.
type SupabaseConfig struct {
	URL string
	Key string
}

// StoreConfig holds the store scope and table layout
type StoreConfig struct {
	PCNumber          string
	DefaultWindowDays int
	SalesTable        string
	LaborTable        string
	WasteTable        string
	StoreColumn       string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Name     string
	Version  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// AuthConfig enables viewer tokens when Secret is set
type AuthConfig struct {
	Secret    string
	ViewerTTL string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	config := &Config{}

	config.Supabase = SupabaseConfig{
		URL: getEnv("SUPABASE_DB_URL", ""),
		Key: getEnv("SUPABASE_DB_KEY", ""),
	}

	windowDays, err := strconv.Atoi(getEnv("DEFAULT_DATE_WINDOW_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_DATE_WINDOW_DAYS: %w", err)
	}

	config.Store = StoreConfig{
		PCNumber:          getEnv("STORE_PC_NUMBER", ""),
		DefaultWindowDays: windowDays,
		SalesTable:        getEnv("SALES_TABLE", "donut_sales_hourly"),
		LaborTable:        getEnv("LABOR_TABLE", "actual_table_labor"),
		WasteTable:        getEnv("WASTE_TABLE", "usage_overview"),
		StoreColumn:       getEnv("STORE_COLUMN", "pc_number"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Name:     getEnv("APP_NAME", "kpi-dashboard"),
		Version:  getEnv("APP_VERSION", "v1.0.0"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.CORS.AllowedOrigins) == 0 {
		config.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	}

	config.Auth = AuthConfig{
		Secret:    getEnv("AUTH_JWT_SECRET", ""),
		ViewerTTL: getEnv("AUTH_VIEWER_TTL", "720h"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Store.DefaultWindowDays < 0 {
		return fmt.Errorf("DEFAULT_DATE_WINDOW_DAYS must not be negative")
	}
	if c.Store.SalesTable == "" || c.Store.LaborTable == "" || c.Store.WasteTable == "" {
		return fmt.Errorf("SALES_TABLE, LABOR_TABLE and WASTE_TABLE must not be empty")
	}
	if c.Store.StoreColumn == "" {
		return fmt.Errorf("STORE_COLUMN must not be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if _, err := time.ParseDuration(c.Auth.ViewerTTL); err != nil {
		return fmt.Errorf("invalid AUTH_VIEWER_TTL: %w", err)
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.App.LogLevel, err)
	}
	return level, nil
}

// AuthEnabled reports whether viewer tokens are required
func (c *Config) AuthEnabled() bool {
	return c.Auth.Secret != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
