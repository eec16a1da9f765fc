package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")
	t.Setenv("ACCESS_TOKEN_TTL_HOURS", "")
	t.Setenv("REFRESH_TOKEN_TTL_HOURS", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.False(t, cfg.Production)
	assert.Equal(t, 7*24*time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.RefreshTokenTTL)
	assert.NotEqual(t, cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("ACCESS_TOKEN_TTL_HOURS", "1")
	t.Setenv("REFRESH_TOKEN_TTL_HOURS", "48")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 48*time.Hour, cfg.RefreshTokenTTL)
}

func TestValidateDevDefaultsAllowedOutsideProduction(t *testing.T) {
	cfg := &Config{
		Production:       false,
		JWTAccessSecret:  devAccessSecret,
		JWTRefreshSecret: devRefreshSecret,
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsDevSecretsInProduction(t *testing.T) {
	cfg := &Config{
		Production:       true,
		JWTAccessSecret:  devAccessSecret,
		JWTRefreshSecret: "prod_refresh_secret_with_enough_length_xx",
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")

	cfg = &Config{
		Production:       true,
		JWTAccessSecret:  "prod_access_secret_with_enough_length_xxx",
		JWTRefreshSecret: devRefreshSecret,
	}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_REFRESH_SECRET")
}

func TestValidateRejectsShortSecrets(t *testing.T) {
	cfg := &Config{
		JWTAccessSecret:  "short",
		JWTRefreshSecret: devRefreshSecret,
	}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsIdenticalSecrets(t *testing.T) {
	secret := "one_secret_reused_for_both_token_classes_x"
	cfg := &Config{
		JWTAccessSecret:  secret,
		JWTRefreshSecret: secret,
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}
