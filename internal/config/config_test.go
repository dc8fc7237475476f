package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("HOTEL_TIMEZONE", "UTC")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "frontdesk.db", cfg.DatabaseURL)
	assert.Equal(t, 30*time.Second, cfg.BoardRefreshInterval)
	assert.Equal(t, 12*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 300, cfg.RateLimitPerMin)
	assert.Equal(t, "UTC", cfg.HotelTimezone.String())
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("BOARD_REFRESH_INTERVAL", "5s")
	t.Setenv("HOTEL_TIMEZONE", "Asia/Kolkata")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://desk.example.com, http://localhost:5173 ,")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.BoardRefreshInterval)
	assert.Equal(t, "Asia/Kolkata", cfg.HotelTimezone.String())
	assert.Equal(t, []string{"https://desk.example.com", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		"BOARD_REFRESH_INTERVAL": "soon",
		"JWT_TTL":                "0s",
		"RATE_LIMIT_PER_MIN":     "many",
		"HOTEL_TIMEZONE":         "Mars/Olympus",
		"LOG_LEVEL":              "loud",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestFromEnv_ProdRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("HOTEL_TIMEZONE", "UTC")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "s3cret-for-tests")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://desk.example.com")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
}
