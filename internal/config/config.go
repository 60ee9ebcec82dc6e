package config

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	RedisURL    string

	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// ResolveTimeout bounds every externally awaited call during session
	// bootstrap and profile resolution.
	ResolveTimeout time.Duration

	// SuperAdminEmail is the designated email the fallback ladder maps to
	// super_admin when the profile store is unreachable.
	SuperAdminEmail string

	// FallbackRoleEnabled controls the email-based fallback role. Any
	// non-designated email degrades to owner when enabled; when disabled the
	// resolver goes straight to the timed-out screen instead.
	FallbackRoleEnabled bool

	// FallbackTenantID is a static development tenant, lowest priority in
	// tenant resolution. uuid.Nil when unset.
	FallbackTenantID uuid.UUID

	// WebhookSecret authenticates the voice-receptionist call webhook. The
	// webhook route is disabled when empty.
	WebhookSecret string

	BaseURL string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	accessExpiry, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"))
	if err != nil {
		refreshExpiry = 168 * time.Hour
	}

	resolveTimeout, err := time.ParseDuration(getEnv("RESOLVE_TIMEOUT", "5s"))
	if err != nil {
		resolveTimeout = 5 * time.Second
	}

	fallbackTenant := uuid.Nil
	if raw := getEnv("FALLBACK_TENANT_ID", ""); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			fallbackTenant = id
		}
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),

		JWTSecret:        getEnvOrPanic("JWT_SECRET"),
		JWTAccessExpiry:  accessExpiry,
		JWTRefreshExpiry: refreshExpiry,

		ResolveTimeout:      resolveTimeout,
		SuperAdminEmail:     getEnv("SUPER_ADMIN_EMAIL", "super@voxali.com"),
		FallbackRoleEnabled: getEnv("FALLBACK_ROLE_ENABLED", "true") == "true",
		FallbackTenantID:    fallbackTenant,

		WebhookSecret: getEnv("WEBHOOK_SECRET", ""),

		BaseURL: getEnv("BASE_URL", "http://localhost:8080"),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
