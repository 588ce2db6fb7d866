package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MigrationsPath string

	// Supabase/hosted Postgres convenience:
	// - DATABASE_URL: runtime connection (often PgBouncer/pooler)
	// - DIRECT_URL: direct connection for migrations
	DatabaseURL string
	DirectURL   string

	DB DBConfig

	Redis RedisConfig

	// PrefsKeyPrefix namespaces persisted dashboard state in the KV backend.
	PrefsKeyPrefix string

	// DashboardAllowedOrigins is a comma-separated allowlist of origins allowed to call
	// the /v1 API from the browser dashboard. Example:
	//   https://admin.example.com,http://localhost:5173
	DashboardAllowedOrigins []string

	// SeedTimezone is the IANA zone used to decide "today" when deriving booking status
	// for sample data. Empty means the process local zone.
	SeedTimezone string
}

type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

type RedisConfig struct {
	// Addr is host:port. Empty disables Redis and persisted state stays in memory.
	Addr     string
	Password string
	DB       int
	TLS      bool
}

func (c Config) IsProd() bool {
	return c.AppEnv == "prod"
}

// SeedLocation resolves SeedTimezone. Empty means time.Local.
func (c Config) SeedLocation() (*time.Location, error) {
	if c.SeedTimezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.SeedTimezone)
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	// Cloud Run sets PORT. Prefer it when HTTP_ADDR isn't explicitly set.
	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			httpAddr = ":" + port
		} else {
			httpAddr = ":8081"
		}
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
		redisAddr = host + ":" + port
	}

	return Config{
		AppEnv:         env("APP_ENV", "dev"),
		HTTPAddr:       httpAddr,
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DirectURL:      os.Getenv("DIRECT_URL"),
		DB: DBConfig{
			Host:     env("DB_HOST", "localhost"),
			Port:     env("DB_PORT", "5432"),
			Name:     env("DB_NAME", "cabinadmin"),
			User:     env("DB_USER", "cabinadmin"),
			Password: env("DB_PASSWORD", "cabinadmin"),
			SSLMode:  env("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
			TLS:      envBool("REDIS_TLS"),
		},
		PrefsKeyPrefix: env("PREFS_KEY_PREFIX", "cabinadmin:prefs:"),

		DashboardAllowedOrigins: envList("DASHBOARD_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:4173"),
		SeedTimezone:            os.Getenv("SEED_TIMEZONE"),
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string) bool {
	v := strings.TrimSpace(os.Getenv(key))
	return strings.EqualFold(v, "true") || v == "1"
}

func envList(key, fallbackCSV string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallbackCSV
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
