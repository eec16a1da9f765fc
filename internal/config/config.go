package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	devAccessSecret  = "dev_access_secret_at_least_32_characters_long"
	devRefreshSecret = "dev_refresh_secret_at_least_32_characters_long"
)

type Config struct {
	ServerAddr string
	Production bool

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Access and refresh tokens are signed with different secrets so a
	// leaked secret of one class cannot forge tokens of the other.
	JWTAccessSecret  string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration

	S3Bucket      string
	S3Region      string
	CloudFrontURL string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		Production: os.Getenv("APP_ENV") == "production",

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "roomly"),

		JWTAccessSecret:  getEnv("JWT_ACCESS_SECRET", devAccessSecret),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", devRefreshSecret),
		AccessTokenTTL:   getHoursEnv("ACCESS_TOKEN_TTL_HOURS", 7*24),
		RefreshTokenTTL:  getHoursEnv("REFRESH_TOKEN_TTL_HOURS", 30*24),

		S3Bucket:      getEnv("S3_BUCKET", ""),
		S3Region:      getEnv("S3_REGION", ""),
		CloudFrontURL: getEnv("CLOUDFRONT_URL", ""),
	}
}

// Validate fails fast when a production deployment would otherwise run on
// the insecure development secrets.
func (c *Config) Validate() error {
	if err := checkSecret("JWT_ACCESS_SECRET", c.JWTAccessSecret, devAccessSecret, c.Production); err != nil {
		return err
	}
	if err := checkSecret("JWT_REFRESH_SECRET", c.JWTRefreshSecret, devRefreshSecret, c.Production); err != nil {
		return err
	}
	if c.JWTAccessSecret == c.JWTRefreshSecret {
		return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	return nil
}

func checkSecret(name, value, devDefault string, production bool) error {
	if production && value == devDefault {
		return fmt.Errorf("%s must be set when APP_ENV=production", name)
	}
	if len(value) < 32 {
		return fmt.Errorf("%s must be at least 32 characters long (current: %d)", name, len(value))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getHoursEnv(key string, fallbackHours int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return time.Duration(fallbackHours) * time.Hour
}
