package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Dosada05/arbitro/brackets"
	"github.com/Dosada05/arbitro/storage"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendR2       = "r2"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort     int
	LogLevel       slog.Level
	StorageBackend string
	DatabaseURL    string
	SQLitePath     string
	R2             storage.CloudflareR2Config

	// Empty URLs disable the matching integration.
	AMQPURL           string
	AMQPQueue         string
	NATSURL           string
	NATSSubjectPrefix string

	CORSAllowedOrigins []string
	SaveKeys           brackets.SaveKeys
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(stringEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
	}

	cfg := &Config{
		ServerPort:     port,
		LogLevel:       level,
		StorageBackend: strings.ToLower(stringEnv("STORAGE_BACKEND", BackendMemory)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     stringEnv("SQLITE_PATH", "arbitro.db"),
		R2: storage.CloudflareR2Config{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("R2_BUCKET_NAME"),
			Prefix:          os.Getenv("R2_PREFIX"),
			Endpoint:        os.Getenv("R2_ENDPOINT"),
		},
		AMQPURL:            os.Getenv("AMQP_URL"),
		AMQPQueue:          stringEnv("AMQP_QUEUE", "match.completed"),
		NATSURL:            os.Getenv("NATS_URL"),
		NATSSubjectPrefix:  stringEnv("NATS_SUBJECT_PREFIX", "arbitro"),
		CORSAllowedOrigins: listEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		SaveKeys: brackets.SaveKeys{
			MainPrefix:       stringEnv("SAVE_KEY_MAIN_PREFIX", brackets.DefaultSaveKeys().MainPrefix),
			ThirdPlacePrefix: stringEnv("SAVE_KEY_THIRD_PLACE_PREFIX", brackets.DefaultSaveKeys().ThirdPlacePrefix),
			LeaguePrefix:     stringEnv("SAVE_KEY_LEAGUE_PREFIX", brackets.DefaultSaveKeys().LeaguePrefix),
			ReturnLegMarker:  stringEnv("SAVE_KEY_RETURN_LEG_MARKER", brackets.DefaultSaveKeys().ReturnLegMarker),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH environment variable is empty")
		}
	case BackendR2:
		if c.R2.AccountID == "" || c.R2.AccessKeyID == "" || c.R2.SecretAccessKey == "" || c.R2.BucketName == "" {
			return fmt.Errorf("R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY and R2_BUCKET_NAME are required for the r2 backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want memory, postgres, sqlite or r2)", c.StorageBackend)
	}

	if c.AMQPURL != "" && c.AMQPQueue == "" {
		return fmt.Errorf("AMQP_QUEUE must not be empty when AMQP_URL is set")
	}
	if err := c.SaveKeys.Validate(); err != nil {
		return fmt.Errorf("invalid save key settings: %w", err)
	}
	return nil
}

func stringEnv(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func intEnv(name string, fallback int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", name, err)
	}
	return n, nil
}

func listEnv(name string, fallback []string) []string {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
