package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	SupabaseUrl       string
	SupabaseJWTSecret string
	FrontendURL       string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Dashboard cache TTL in seconds (0 disables caching)
	DashboardCacheTTLSeconds int
	// Resolver Configuration
	// Upper bound on the free-text fallback scan window. Matches outside
	// the window are silently missed; this is a documented limitation of
	// the legacy-data fallback, not a bug to "fix" with a full scan.
	ResolverScanLimit int
	// Dashboard job recommendation count
	DashboardJobLimit int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// Strip trailing slash to avoid double slashes when composing URLs
		SupabaseUrl:       strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseJWTSecret: getEnv("SUPABASE_JWT_SECRET", getEnv("SUPABASE_JWT_KEY", "")),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),

		DashboardCacheTTLSeconds: getEnvInt("DASHBOARD_CACHE_TTL_SECONDS", 30),
		ResolverScanLimit:        getEnvInt("RESOLVER_SCAN_LIMIT", 100),
		DashboardJobLimit:        getEnvInt("DASHBOARD_JOB_LIMIT", 5),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Dashboard caching disabled.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
