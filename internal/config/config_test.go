package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "CLIENT_ORIGIN", "REQUEST_TIMEOUT", "MAX_LINE_LENGTH", "EXAMPLES_FILE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:           "5175",
		LogLevel:       "info",
		ClientOrigin:   "http://localhost:5173",
		RequestTimeout: 10 * time.Second,
		MaxLineLength:  512,
	}, cfg)
	assert.Equal(t, ":5175", cfg.Addr())
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("MAX_LINE_LENGTH", "64")
	t.Setenv("EXAMPLES_FILE", "/tmp/hints.txt")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 64, cfg.MaxLineLength)
	assert.Equal(t, "/tmp/hints.txt", cfg.ExamplesFile)
}

func TestParseEnv_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{name: "bad duration", key: "REQUEST_TIMEOUT", value: "soon"},
		{name: "bad int", key: "MAX_LINE_LENGTH", value: "lots"},
		{name: "non-positive length", key: "MAX_LINE_LENGTH", value: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := ParseEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parse env:")
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	require.NoError(t, os.Unsetenv("PORT"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9999\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("PORT") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
}
