// Package config centralizes runtime settings so no component reads the
// environment or holds package-level state on its own.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds everything the server needs at startup.
//
// Fields:
//   - Addr: HTTP bind address.
//   - DatabaseDSN: PostgreSQL DSN (gorm/pgx).
//   - JWTSecret: HMAC secret for signing bearer tokens (HS256).
//   - TokenValidity: bearer token lifetime.
//   - UploadDir / UploadBaseURL: local upload storage and its public prefix.
//   - S3*: optional S3-compatible object storage; when S3Bucket is set the
//     upload endpoints write there instead of the local disk.
//   - RedisAddr: optional Redis for rate-limit decision counters.
//   - AuthRateRPS / AuthRateBurst: per-client throttle on the auth endpoints.
type Config struct {
	Env           string
	Addr          string
	DatabaseDSN   string
	JWTSecret     string
	TokenValidity time.Duration

	UploadDir     string
	UploadBaseURL string
	MaxUploadSize int64

	S3Bucket       string
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	S3BaseEndpoint string

	RedisAddr     string
	AuthRateRPS   float64
	AuthRateBurst int
}

// LoadDefaults populates development defaults. The JWT secret default is
// deliberately unusable outside dev; Load rejects it in production.
func (c *Config) LoadDefaults() {
	c.Env = "development"
	c.Addr = ":8080"
	c.DatabaseDSN = "host=localhost user=postgres password=postgres dbname=hirehub port=5432 sslmode=disable"
	c.JWTSecret = "dev-secret"
	c.TokenValidity = 7 * 24 * time.Hour
	c.UploadDir = "uploads"
	c.UploadBaseURL = "/uploads"
	c.MaxUploadSize = 8 << 20
	c.S3Region = "us-east-1"
	c.AuthRateRPS = 5
	c.AuthRateBurst = 10
}

// Load builds a Config from defaults overlaid with environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	overlayString(&cfg.Env, "APP_ENV")
	overlayString(&cfg.Addr, "ADDRESS")
	overlayString(&cfg.DatabaseDSN, "DATABASE_DSN")
	overlayString(&cfg.JWTSecret, "JWT_SECRET")
	overlayDuration(&cfg.TokenValidity, "TOKEN_VALIDITY")

	overlayString(&cfg.UploadDir, "UPLOAD_DIR")
	overlayString(&cfg.UploadBaseURL, "UPLOAD_BASE_URL")
	overlayInt64(&cfg.MaxUploadSize, "MAX_UPLOAD_SIZE")

	overlayString(&cfg.S3Bucket, "S3_BUCKET")
	overlayString(&cfg.S3Region, "S3_REGION")
	overlayString(&cfg.S3AccessKey, "S3_ACCESS_KEY")
	overlayString(&cfg.S3SecretKey, "S3_SECRET_KEY")
	overlayString(&cfg.S3BaseEndpoint, "S3_BASE_ENDPOINT")

	overlayString(&cfg.RedisAddr, "REDIS_ADDR")
	overlayFloat(&cfg.AuthRateRPS, "AUTH_RATE_RPS")
	overlayInt(&cfg.AuthRateBurst, "AUTH_RATE_BURST")

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret" {
		return nil, errors.New("config: JWT_SECRET must be set in production")
	}
	return cfg, nil
}

func overlayString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func overlayDuration(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func overlayInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func overlayInt64(dst *int64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func overlayFloat(dst *float64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
