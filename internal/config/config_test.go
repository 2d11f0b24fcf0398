package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "LOG_MAX_MB", "SITE_URL",
		"TIMEZONE", "APP_ENV", "COOKIE_SECRET", "FAVORITES_DB", "OUT_DIR"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "console", c.LogFormat)
	assert.Equal(t, "http://localhost:5175", c.SiteURL)
	assert.Equal(t, "out", c.OutDir)
	assert.False(t, c.Production())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SITE_URL", "https://example.github.io/GameDirectory/")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("APP_ENV", "production")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "https://example.github.io/GameDirectory", c.SiteURL)
	assert.Equal(t, "UTC", c.Location().String())
	assert.True(t, c.Production())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string][2]string{
		"port":     {"PORT", "http"},
		"level":    {"LOG_LEVEL", "loud"},
		"format":   {"LOG_FORMAT", "xml"},
		"site":     {"SITE_URL", "not a url"},
		"env":      {"APP_ENV", "staging"},
		"secret":   {"COOKIE_SECRET", "short"},
		"timezone": {"TIMEZONE", "Mars/Olympus"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
