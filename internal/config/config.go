package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPAddr string

	DBType     string
	DBPath     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	// AnalyzerBaseURL points at the external invoice-analysis service the
	// upload/analyze endpoints forward to.
	AnalyzerBaseURL string

	// CloudSaveEnabled toggles the cloud-save affordance surfaced to the
	// client. It has no effect on computation.
	CloudSaveEnabled bool
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:          getenv("APP_SERVICE", "paperbrain"),
		AppVersion:       getenv("APP_VERSION", "0.1.0"),
		Environment:      getenv("ENVIRONMENT", "development"),
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		DBType:           getenv("DATABASE_TYPE", "sqlite"),
		DBPath:           getenv("DATABASE_PATH", "paperbrain.db"),
		DBHost:           getenv("DATABASE_HOST", "localhost"),
		DBPort:           getenv("DATABASE_PORT", "5432"),
		DBName:           getenv("DATABASE_NAME", "paperbrain"),
		DBUser:           getenv("DATABASE_USER", "paperbrain"),
		DBPassword:       getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:        getenv("DATABASE_SSLMODE", "disable"),
		AnalyzerBaseURL:  strings.TrimSpace(getenv("ANALYZER_BASE_URL", "")),
		CloudSaveEnabled: getenvBool("CLOUD_SAVE_ENABLED", false),
	}
}

var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewInvoiceDefaultsHolder),
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
