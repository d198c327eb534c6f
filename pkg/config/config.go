package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	GitHub  GitHubConfig
	Session SessionConfig
	Workers WorkersConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
	CORSOrigins  []string
}

type GitHubConfig struct {
	APIURL    string
	UserAgent string
	Timeout   int
}

type SessionConfig struct {
	Secret     string
	TTLMinutes int
}

type WorkersConfig struct {
	SweepIntervalSeconds int
}

type LogConfig struct {
	Level  string
	Format string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
			CORSOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS"),
		},
		GitHub: GitHubConfig{
			APIURL:    getEnv("GITHUB_API_URL", "https://api.github.com/"),
			UserAgent: getEnv("GITHUB_USER_AGENT", "ghprofile"),
			Timeout:   getEnvAsInt("GITHUB_TIMEOUT", 30),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "default-secret-key"),
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 24*60),
		},
		Workers: WorkersConfig{
			SweepIntervalSeconds: getEnvAsInt("SWEEP_INTERVAL_SECONDS", 60),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return nil
}

// Get returns the loaded configuration, loading it on first use
func Get() *Config {
	if AppConfig == nil {
		_ = Load()
	}
	return AppConfig
}

// SessionTTL returns the idle lifetime of a session
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

// SweepInterval returns how often idle sessions are collected
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Workers.SweepIntervalSeconds) * time.Second
}

// RequestTimeout returns the per-request timeout for GitHub API calls
func (c GitHubConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma separated environment variable, skipping empty items
func getEnvAsList(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
