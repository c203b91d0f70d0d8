package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Directions client kinds.
const (
	ClientHTTP = "http"
	ClientSDK  = "sdk"
)

var ErrMissingAPIKey = errors.New("directions api key is required (set GOOGLE_MAPS_API_KEY)")

// Config holds all configuration for the command
type Config struct {
	Directions DirectionsConfig
	Route      RouteConfig
	Log        LogConfig

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool `mapstructure:"-"`
}

// DirectionsConfig holds the directions provider settings
type DirectionsConfig struct {
	APIKey  string
	BaseURL string
	Client  string        // http, sdk
	Timeout time.Duration // 0 disables the client timeout
}

// RouteConfig holds the addresses to route between
type RouteConfig struct {
	Origin      string
	Destination string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads .env, an optional config file and environment variables, in
// increasing order of precedence, and validates the result.
func Load() (*Config, error) {
	envLoaded := godotenv.Load() == nil

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.route-polyline")

	// Set defaults
	v.SetDefault("directions.apikey", "")
	v.SetDefault("directions.baseurl", "https://maps.googleapis.com")
	v.SetDefault("directions.client", ClientHTTP)
	v.SetDefault("directions.timeout", 30*time.Second)
	v.SetDefault("route.origin", "3130 Woodhams Dr, Regina, SK S4V 2P9")
	v.SetDefault("route.destination", "376 University Park Dr, Regina, SK S4X 1J4")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	// Read from environment variables, e.g. ROUTE_DIRECTIONS_CLIENT
	v.SetEnvPrefix("ROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Conventional names
	if err := v.BindEnv("directions.apikey", "ROUTE_DIRECTIONS_APIKEY", "GOOGLE_MAPS_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}
	if err := v.BindEnv("route.origin", "ROUTE_ROUTE_ORIGIN", "ROUTE_ORIGIN"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}
	if err := v.BindEnv("route.destination", "ROUTE_ROUTE_DESTINATION", "ROUTE_DESTINATION"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.EnvFileLoaded = envLoaded

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings a run cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Directions.APIKey) == "" {
		return ErrMissingAPIKey
	}

	switch strings.ToLower(c.Directions.Client) {
	case ClientHTTP, ClientSDK:
	default:
		return fmt.Errorf("unknown directions client %q (want %q or %q)", c.Directions.Client, ClientHTTP, ClientSDK)
	}

	if c.Directions.Timeout < 0 {
		return fmt.Errorf("directions timeout must not be negative, got %s", c.Directions.Timeout)
	}

	return nil
}

// NewLogger creates a new slog.Logger writing to stderr; stdout carries the
// route output.
func (c *Config) NewLogger() *slog.Logger {
	return c.newLogger(os.Stderr)
}

func (c *Config) newLogger(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
