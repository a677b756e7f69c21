package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Import   ImportConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// DatabaseConfig selects the storage backend. Driver is one of "sqlite",
// "pgx" or "memory".
type DatabaseConfig struct {
	Driver          string
	URL             string
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ImportConfig struct {
	MaxUploadBytes    int64
	HeaderAliasesPath string
}

// DSN returns the connection string for the configured driver.
func (c DatabaseConfig) DSN() string {
	if c.Driver == "pgx" {
		return c.URL
	}
	return c.Path
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   Get("APP_ENV", "development"),
			HTTPPort: strings.TrimPrefix(Get("HTTP_PORT", "8080"), ":"),
		},
		Logger: LoggerConfig{
			Level:             Get("LOGGER_LEVEL", "info"),
			Encoding:          Get("LOGGER_ENCODING", "console"),
			DisableCaller:     GetBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: GetBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(Get("DB_DRIVER", "sqlite")),
			URL:             Get("DATABASE_URL", ""),
			Path:            Get("DB_PATH", "data/app.db"),
			MaxOpenConns:    GetInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    GetInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: time.Duration(GetInt("DB_CONN_MAX_LIFETIME_SEC", 1800)) * time.Second,
		},
		Import: ImportConfig{
			MaxUploadBytes:    int64(GetInt("MAX_UPLOAD_MB", 32)) << 20,
			HeaderAliasesPath: Get("HEADER_ALIASES_PATH", ""),
		},
	}
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	if v := Get(key, ""); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func GetBool(key string, fallback bool) bool {
	if v := Get(key, ""); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
