package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Geocoder  GeocoderConfig
	OpenMeteo OpenMeteoConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	ForecastDays int // Number of days requested from the upstream APIs
}

// GeocoderConfig configures the Nominatim client
type GeocoderConfig struct {
	URL        string
	UserAgent  string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

// OpenMeteoConfig configures the marine and weather forecast clients
type OpenMeteoConfig struct {
	MarineURL   string
	ForecastURL string
	Timeout     time.Duration
	Retries     int
	Backoff     time.Duration
}

// DatabaseConfig holds the booking database settings
type DatabaseConfig struct {
	URL          string // postgres://... or sqlite:///path
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig enables the distributed schedule lock when URL is set
type RedisConfig struct {
	URL         string
	LockTimeout time.Duration
}

// KafkaConfig enables booking events when Brokers is non-empty
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Load reads configuration from .env, the config file and environment variables
func Load() (*Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.surfcast")

	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("SURFCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Conventional unprefixed names win when present
	_ = v.BindEnv("database.url", "SURFCAST_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("redis.url", "SURFCAST_REDIS_URL", "REDIS_URL")

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

	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.forecastdays", 7)

	v.SetDefault("geocoder.url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoder.useragent", "surf_forecast_mcp")
	v.SetDefault("geocoder.timeout", 10*time.Second)
	v.SetDefault("geocoder.retries", 3)
	v.SetDefault("geocoder.retrydelay", time.Second)

	v.SetDefault("openmeteo.marineurl", "https://marine-api.open-meteo.com/v1/marine")
	v.SetDefault("openmeteo.forecasturl", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("openmeteo.timeout", 30*time.Second)
	v.SetDefault("openmeteo.retries", 3)
	v.SetDefault("openmeteo.backoff", time.Second)

	v.SetDefault("database.url", "sqlite:///surf_school.db")
	v.SetDefault("database.maxopenconns", 25)
	v.SetDefault("database.maxidleconns", 10)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.locktimeout", 10*time.Second)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "surfcast.bookings")
}

// splitList accepts both YAML lists and a single comma-separated env value
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
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
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
